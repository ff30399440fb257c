package netcore

import (
	"fmt"
	"sync"
)

// AllocFlags modifies how Pool.Allocate sizes and reserves a buffer.
type AllocFlags uint32

const (
	// AllocFlagDeviceHeaders adds the owning link's declared
	// HeaderSize/FooterSize on top of the caller's own header/footer.
	AllocFlagDeviceHeaders AllocFlags = 1 << iota
)

// Pool is a process-wide cache of reusable PacketBuffers. It hands out
// buffers sized, aligned, and physically addressable per caller
// requirements, and reclaims them in O(1) so the hot I/O path does not
// repeatedly hit the heap. Grounded on the first-fit free-list allocator
// pattern used for DMA regions (container/list of free blocks, first
// block that fits wins) adapted here to a singly-linked list of whole
// buffers rather than sub-allocated byte ranges: PacketBuffers are
// reused whole, never split.
type Pool struct {
	mu       sync.Mutex
	freeList *PacketBuffer // head of the free-list, linked via PacketBuffer.next

	// newBuffer is overridable in tests to observe/force heap misses
	// without depending on real physical memory.
	newBuffer func(capacity int, pinned bool, link *LinkProperties) (*PacketBuffer, error)
}

// NewPool constructs an empty pool.
func NewPool() *Pool {
	p := &Pool{}
	p.newBuffer = p.allocateFresh
	return p
}

// Allocate returns a buffer of at least header+size+footer bytes that
// also satisfies the link's alignment and maximum physical address
// constraints, per spec.md section 4.1.
func (p *Pool) Allocate(header, size, footer int, link *LinkProperties, flags AllocFlags) (*PacketBuffer, error) {
	if header < 0 || size < 0 || footer < 0 {
		return nil, fmt.Errorf("netcore: %w: negative buffer dimension", ErrInvalidParameter)
	}

	devHeader, devFooter := link.devHeaderFooter(flags)
	needed := header + devHeader + size + devFooter + footer

	align := link.alignment()
	total := alignUp(needed, align)

	padding := 0
	if minSize := link.minPacketSize(); total < minSize {
		padding = minSize - total
		total = minSize
	}

	maxAddr := link.maxPhysAddr()

	b := p.takeFit(total, align, maxAddr, link != nil)
	if b == nil {
		fresh, err := p.newBuffer(total, link != nil, link)
		if err != nil {
			return nil, err
		}
		b = fresh
	}

	b.dataOffset = header + devHeader
	b.footerOffset = b.dataOffset + size
	if padding > 0 {
		// Zero the trailing pad so a short frame never carries stale
		// free-list bytes onto the wire.
		for i := b.footerOffset; i < total; i++ {
			b.data[i] = 0
		}
	}
	b.flags = 0

	return b, nil
}

// takeFit scans the free-list for the first buffer satisfying cap, phys
// alignment and the max-address ceiling, unlinking and returning it. It
// must be called with the pool unlocked; it acquires the lock itself and
// releases it before returning so callers never hold it across a heap
// allocation.
func (p *Pool) takeFit(total, align int, maxAddr uint64, requirePinned bool) *PacketBuffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	var prev *PacketBuffer
	for b := p.freeList; b != nil; b = b.next {
		fits := b.Capacity() >= total
		pinned := b.physBase != NoPhysAddr
		addrOK := !pinned || (b.physBase%uint64(align) == 0 && b.physBase+uint64(b.Capacity()) <= maxAddr)
		pinOK := pinned == requirePinned

		if fits && addrOK && pinOK {
			if prev != nil {
				prev.next = b.next
			} else {
				p.freeList = b.next
			}
			b.next = nil
			return b
		}
		prev = b
	}
	return nil
}

// allocateFresh is the default newBuffer implementation: it backs the
// buffer with paged memory, or with memory pinned by pinBuffer (platform
// specific) when a link is given, matching "physically contiguous
// non-paged memory ... when a link is given" from spec.md section 4.1.
func (p *Pool) allocateFresh(capacity int, pinned bool, link *LinkProperties) (*PacketBuffer, error) {
	b := newPacketBuffer(capacity, NoPhysAddr)
	if !pinned {
		return b, nil
	}
	addr, err := pinBuffer(b.data)
	if err != nil {
		return nil, fmt.Errorf("netcore: %w: %v", ErrOutOfResources, err)
	}
	b.physBase = addr
	return b, nil
}

// Free inserts b at the head of the free-list. It does not shrink
// capacity or zero the payload; a later Allocate may observe stale bytes
// in the tail of a reused buffer and must treat them as padding, not
// data (the zeroing in Allocate only covers bytes beyond the new
// footer).
func (p *Pool) Free(b *PacketBuffer) {
	if b == nil {
		return
	}
	p.mu.Lock()
	b.next = p.freeList
	b.prev = nil
	p.freeList = b
	p.mu.Unlock()
}

// DestroyList detaches and frees every buffer on list, leaving it empty.
func (p *Pool) DestroyList(list *PacketList) {
	for {
		b := list.PopFront()
		if b == nil {
			return
		}
		p.Free(b)
	}
}
