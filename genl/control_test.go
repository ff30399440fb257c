package genl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	netcore "github.com/packetkit/netcore"
	"github.com/packetkit/netcore/genl"
)

func buildControlMessage(familyID uint16, command uint8, attrs []byte) []byte {
	msg := make([]byte, 20, 20+len(attrs))
	total := uint32(len(msg) + len(attrs))
	msg[0] = byte(total)
	msg[1] = byte(total >> 8)
	msg[2] = byte(total >> 16)
	msg[3] = byte(total >> 24)
	msg[4] = byte(familyID)
	msg[5] = byte(familyID >> 8)
	msg[16] = command
	return append(msg, attrs...)
}

// TestControlFamily_GetFamilyResolvesRegisteredName covers scenario S5
// against the built-in control family: GET_FAMILY carrying a
// FAMILY_NAME attribute resolves a registered family and replies with
// its id and name.
func TestControlFamily_GetFamilyResolvesRegisteredName(t *testing.T) {
	pool := netcore.NewPool()
	reg := genl.NewRegistry(16, 1023, pool)

	ctrlHandle, err := genl.RegisterControlFamily(reg)
	require.NoError(t, err)
	defer reg.Unregister(ctrlHandle)

	fooHandle, err := reg.Register(genl.Properties{
		Name:    "foo",
		Version: 1,
		Commands: map[uint8]genl.CommandCallback{
			1: func(sock genl.Socket, attrs []byte, params genl.Params) error { return nil },
		},
	})
	require.NoError(t, err)
	defer reg.Unregister(fooHandle)

	var attrs []byte
	attrs = genl.EncodeAttribute(attrs, genl.AttrFamilyName, []byte("foo\x00"))
	msg := buildControlMessage(ctrlHandle.Family().ID(), genl.CmdGetFamily, attrs)

	sock := &recordingSocket{}
	require.NoError(t, reg.Dispatch(sock, msg))

	require.Len(t, sock.got, 1)
	reply := sock.got[0]
	require.GreaterOrEqual(t, len(reply), 20)

	replyAttrs := reply[20:]
	idBytes, err := genl.GetAttribute(replyAttrs, genl.AttrFamilyID)
	require.NoError(t, err)
	require.Len(t, idBytes, 2)
	gotID := uint16(idBytes[0]) | uint16(idBytes[1])<<8
	assert.Equal(t, fooHandle.Family().ID(), gotID)

	nameBytes, err := genl.GetAttribute(replyAttrs, genl.AttrFamilyName)
	require.NoError(t, err)
	assert.Equal(t, "foo", string(nameBytes[:len(nameBytes)-1]))
}

func TestControlFamily_GetFamilyUnknownNameNotFound(t *testing.T) {
	pool := netcore.NewPool()
	reg := genl.NewRegistry(16, 1023, pool)
	ctrlHandle, err := genl.RegisterControlFamily(reg)
	require.NoError(t, err)
	defer reg.Unregister(ctrlHandle)

	var attrs []byte
	attrs = genl.EncodeAttribute(attrs, genl.AttrFamilyName, []byte("missing\x00"))
	msg := buildControlMessage(ctrlHandle.Family().ID(), genl.CmdGetFamily, attrs)

	sock := &recordingSocket{}
	err = reg.Dispatch(sock, msg)
	assert.ErrorIs(t, err, netcore.ErrNotFound)
}

func TestControlFamily_MutatingCommandsNotSupported(t *testing.T) {
	pool := netcore.NewPool()
	reg := genl.NewRegistry(16, 1023, pool)
	ctrlHandle, err := genl.RegisterControlFamily(reg)
	require.NoError(t, err)
	defer reg.Unregister(ctrlHandle)

	msg := buildControlMessage(ctrlHandle.Family().ID(), genl.CmdDeleteFamily, nil)
	sock := &recordingSocket{}
	err = reg.Dispatch(sock, msg)
	assert.ErrorIs(t, err, netcore.ErrNotSupported)
}
