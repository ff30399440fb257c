package genl_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	netcore "github.com/packetkit/netcore"
	"github.com/packetkit/netcore/genl"
)

type recordingSocket struct {
	mu  sync.Mutex
	got [][]byte
}

func (s *recordingSocket) Send(buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(buf))
	copy(cp, buf)
	s.got = append(s.got, cp)
	return nil
}

func noopCommand(sock genl.Socket, attrs []byte, params genl.Params) error { return nil }

// TestRegistry_UniquenessAcrossIDAndName covers property 6: a successful
// register is visible under both keys, and a second register with
// either the same id or the same name fails with duplicate-entry.
func TestRegistry_UniquenessAcrossIDAndName(t *testing.T) {
	reg := genl.NewRegistry(16, 1023, netcore.NewPool())

	h, err := reg.Register(genl.Properties{
		ID:       20,
		Name:     "foo",
		Version:  1,
		Commands: map[uint8]genl.CommandCallback{1: noopCommand},
	})
	require.NoError(t, err)
	defer reg.Unregister(h)

	byID, err := reg.LookupByID(20)
	require.NoError(t, err)
	defer byID.Release()
	byName, err := reg.LookupByName("foo")
	require.NoError(t, err)
	defer byName.Release()
	assert.Same(t, byID.Family(), byName.Family())

	_, err = reg.Register(genl.Properties{
		ID: 20, Name: "bar", Commands: map[uint8]genl.CommandCallback{1: noopCommand},
	})
	assert.ErrorIs(t, err, netcore.ErrDuplicateEntry)

	_, err = reg.Register(genl.Properties{
		ID: 21, Name: "foo", Commands: map[uint8]genl.CommandCallback{1: noopCommand},
	})
	assert.ErrorIs(t, err, netcore.ErrDuplicateEntry)
}

// TestRegistry_DynamicIDRange covers property 8: dynamic allocation
// stays within [minID, maxID] and fails with out-of-resources only once
// the whole range is occupied.
func TestRegistry_DynamicIDRange(t *testing.T) {
	reg := genl.NewRegistry(100, 102, netcore.NewPool())

	var handles []*genl.FamilyHandle
	for i := 0; i < 3; i++ {
		h, err := reg.Register(genl.Properties{
			Name:     string(rune('a' + i)),
			Commands: map[uint8]genl.CommandCallback{1: noopCommand},
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, h.Family().ID(), uint16(100))
		assert.LessOrEqual(t, h.Family().ID(), uint16(102))
		handles = append(handles, h)
	}

	_, err := reg.Register(genl.Properties{
		Name:     "overflow",
		Commands: map[uint8]genl.CommandCallback{1: noopCommand},
	})
	assert.ErrorIs(t, err, netcore.ErrOutOfResources)

	for _, h := range handles {
		reg.Unregister(h)
	}
}

// TestRegistry_UnregisterWaitsForInFlightCallback covers property 7 and
// scenario S6: Unregister blocks until a running callback returns, and a
// lookup issued once the entry has left the indexes fails.
func TestRegistry_UnregisterWaitsForInFlightCallback(t *testing.T) {
	reg := genl.NewRegistry(16, 1023, netcore.NewPool())

	started := make(chan struct{})
	release := make(chan struct{})
	slow := func(sock genl.Socket, attrs []byte, params genl.Params) error {
		close(started)
		<-release
		return nil
	}

	h, err := reg.Register(genl.Properties{
		Name:     "bar",
		Commands: map[uint8]genl.CommandCallback{1: slow},
	})
	require.NoError(t, err)

	callHandle, err := reg.LookupByName("bar")
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer callHandle.Release()
		_ = slow(&recordingSocket{}, nil, genl.Params{})
	}()

	<-started

	unregisterDone := make(chan struct{})
	go func() {
		reg.Unregister(h)
		close(unregisterDone)
	}()

	// The entry is already out of the indexes even though the callback
	// above hasn't returned yet.
	time.Sleep(10 * time.Millisecond)
	_, err = reg.LookupByName("bar")
	assert.ErrorIs(t, err, netcore.ErrNotFound)

	select {
	case <-unregisterDone:
		t.Fatal("Unregister returned before the in-flight callback finished")
	default:
	}

	close(release)
	wg.Wait()
	<-unregisterDone
}

func TestRegistry_RejectsEmptyCommandTable(t *testing.T) {
	reg := genl.NewRegistry(16, 1023, netcore.NewPool())
	_, err := reg.Register(genl.Properties{Name: "empty"})
	assert.ErrorIs(t, err, netcore.ErrInvalidParameter)
}

func TestRegistry_DispatchRoutesToRegisteredCommand(t *testing.T) {
	reg := genl.NewRegistry(16, 1023, netcore.NewPool())

	var gotName string
	h, err := reg.Register(genl.Properties{
		Name:    "foo",
		Version: 1,
		Commands: map[uint8]genl.CommandCallback{
			1: func(sock genl.Socket, attrs []byte, params genl.Params) error {
				name, err := genl.GetAttribute(attrs, 42)
				if err != nil {
					return err
				}
				gotName = string(name)
				return nil
			},
		},
	})
	require.NoError(t, err)
	defer reg.Unregister(h)

	var attrs []byte
	attrs = genl.EncodeAttribute(attrs, 42, []byte("foo"))

	var msg []byte
	msg = append(msg, make([]byte, 16+4)...)
	msg = append(msg, attrs...)
	msg[0] = byte(len(msg))
	fid := h.Family().ID()
	msg[4] = byte(fid)
	msg[5] = byte(fid >> 8)
	msg[16] = 1 // command

	sock := &recordingSocket{}
	require.NoError(t, reg.Dispatch(sock, msg))
	assert.Equal(t, "foo", gotName)
}

func TestRegistry_DispatchUnknownFamilyIsNotSupported(t *testing.T) {
	reg := genl.NewRegistry(16, 1023, netcore.NewPool())
	msg := make([]byte, 16+4)
	msg[0] = byte(len(msg))
	sock := &recordingSocket{}
	err := reg.Dispatch(sock, msg)
	assert.ErrorIs(t, err, netcore.ErrNotSupported)
}
