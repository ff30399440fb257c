package netcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLink() *LinkProperties {
	return &LinkProperties{
		MinPacketSize: 64,
		Alignment:     64,
		MaxPhysAddr:   0x1_0000_0000,
	}
}

// S1 Allocate-fit.
func TestPool_AllocateFit(t *testing.T) {
	p := NewPool()
	link := testLink()

	b, err := p.Allocate(14, 1500, 0, link, 0)
	require.NoError(t, err)

	assert.Equal(t, 14, b.DataOffset())
	assert.Equal(t, 1514, b.FooterOffset())
	assert.Equal(t, 0, b.Capacity()%64)
	assert.Less(t, b.PhysAddr(), uint64(1)<<32)
}

// S2 Reuse: free then allocate a buffer that fits, no heap call.
func TestPool_ReuseIdempotence(t *testing.T) {
	p := NewPool()
	link := testLink()

	calls := 0
	orig := p.newBuffer
	p.newBuffer = func(capacity int, pinned bool, link *LinkProperties) (*PacketBuffer, error) {
		calls++
		return orig(capacity, pinned, link)
	}

	b1, err := p.Allocate(14, 1500, 0, link, 0)
	require.NoError(t, err)
	require.Equal(t, 1, calls)

	p.Free(b1)

	b2, err := p.Allocate(0, 1500, 0, link, 0)
	require.NoError(t, err)
	assert.Same(t, b1, b2)
	assert.Equal(t, 1, calls, "reuse must not touch the underlying allocator")
}

func TestPool_PaddingZeroedBelowMinPacketSize(t *testing.T) {
	p := NewPool()
	link := &LinkProperties{MinPacketSize: 64, Alignment: 1}

	b, err := p.Allocate(0, 20, 0, link, 0)
	require.NoError(t, err)

	assert.Equal(t, 64, b.Capacity())
	for i := b.FooterOffset(); i < b.Capacity(); i++ {
		assert.Zero(t, b.data[i])
	}
}

func TestPool_NoLinkMeansUnpinned(t *testing.T) {
	p := NewPool()

	b, err := p.Allocate(0, 100, 0, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, NoPhysAddr, b.PhysAddr())
}

func TestPool_DestroyListFreesAndEmpties(t *testing.T) {
	p := NewPool()
	list := NewPacketList()

	for i := 0; i < 3; i++ {
		b, err := p.Allocate(0, 64, 0, nil, 0)
		require.NoError(t, err)
		list.PushBack(b)
	}

	p.DestroyList(list)
	assert.Equal(t, 0, list.Len())

	freed := 0
	for b := p.freeList; b != nil; b = b.next {
		freed++
	}
	assert.Equal(t, 3, freed)
}

func TestPacketList_AppendMovesAndEmptiesSource(t *testing.T) {
	dst := NewPacketList()
	src := NewPacketList()

	a := &PacketBuffer{}
	b := &PacketBuffer{}
	src.PushBack(a)
	src.PushBack(b)

	dst.Append(src)

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 2, dst.Len())

	assert.Same(t, a, dst.PopFront())
	assert.Same(t, b, dst.PopFront())
}

func TestPacketList_RemoveMiddle(t *testing.T) {
	l := NewPacketList()
	a, b, c := &PacketBuffer{}, &PacketBuffer{}, &PacketBuffer{}
	l.PushBack(a)
	l.PushBack(b)
	l.PushBack(c)

	l.Remove(b)

	assert.Equal(t, 2, l.Len())
	assert.Same(t, a, l.PopFront())
	assert.Same(t, c, l.PopFront())
}
