package netcore

// BufferFlags is a bitfield of per-buffer attributes.
type BufferFlags uint32

const (
	// FlagUnencrypted marks a buffer whose payload must not be sent
	// over an encrypted transport (e.g. control-plane loopback traffic).
	FlagUnencrypted BufferFlags = 1 << iota
	// FlagChecksumOffload requests hardware checksum computation for
	// the descriptor this buffer is attached to.
	FlagChecksumOffload
	// FlagEndOfPacket marks the final (only, for single-fragment
	// buffers) descriptor of a packet.
	FlagEndOfPacket
)

// NoPhysAddr is the sentinel physical base address of a buffer that was
// never pinned to a physical page, i.e. one allocated without a link.
const NoPhysAddr uint64 = ^uint64(0)

// PacketBuffer is a single DMA-capable contiguous memory region, the unit
// of currency between the pool, the ring engine, and the family registry.
//
// Invariants: 0 <= dataOffset <= footerOffset <= capacity. While a buffer
// sits on the pool's free-list no other component may read or write it;
// while it is attached to a device descriptor the pool must not reclaim
// it. Both are enforced by convention at the call sites that move a
// buffer between owners, not by a runtime check here.
type PacketBuffer struct {
	data []byte

	// physBase is the buffer's physical address, or NoPhysAddr if it
	// was allocated without a link and is not pinned.
	physBase uint64

	dataOffset   int
	footerOffset int
	flags        BufferFlags

	// next/prev are the link field used by the pool's free-list and by
	// whichever PacketList (e.g. the driver's pending TX queue)
	// currently holds the buffer. A buffer is never on two lists at once.
	next, prev *PacketBuffer
}

func newPacketBuffer(capacity int, physBase uint64) *PacketBuffer {
	return &PacketBuffer{
		data:     make([]byte, capacity),
		physBase: physBase,
	}
}

// Capacity returns the total usable size of the backing region.
func (b *PacketBuffer) Capacity() int { return len(b.data) }

// PhysAddr returns the buffer's physical base address, or NoPhysAddr if
// it is not pinned.
func (b *PacketBuffer) PhysAddr() uint64 { return b.physBase }

// DataOffset returns the current start of the payload.
func (b *PacketBuffer) DataOffset() int { return b.dataOffset }

// FooterOffset returns the current end of the payload.
func (b *PacketBuffer) FooterOffset() int { return b.footerOffset }

// Flags returns the buffer's flag bitfield.
func (b *PacketBuffer) Flags() BufferFlags { return b.flags }

// SetFlags overwrites the buffer's flag bitfield.
func (b *PacketBuffer) SetFlags(f BufferFlags) { b.flags = f }

// Payload returns the slice between dataOffset and footerOffset. The
// returned slice aliases the buffer's backing array; callers must not
// retain it past the buffer's lifetime with the current owner.
func (b *PacketBuffer) Payload() []byte {
	return b.data[b.dataOffset:b.footerOffset]
}

// ResetView reinterprets the buffer's existing backing region with a new
// dataOffset and payload length, without reallocating. Used to synthesize
// a view over a receive slot's payload region after the device fills it.
func (b *PacketBuffer) ResetView(dataOffset, length int) {
	if dataOffset+length > len(b.data) {
		panic("netcore: view exceeds buffer capacity")
	}
	b.dataOffset = dataOffset
	b.footerOffset = dataOffset + length
	b.flags = 0
}

// Headroom returns the number of bytes currently reserved before
// dataOffset, the amount a caller may still Prepend.
func (b *PacketBuffer) Headroom() int { return b.dataOffset }

// Prepend grows the payload view backward by n bytes and returns that
// newly included region for the caller to fill, the mechanism a
// protocol layer uses to write its header into reserved headroom rather
// than allocating a second buffer. Panics if n exceeds Headroom(); a
// caller that cannot statically guarantee enough headroom should check
// Headroom() first and fail with a typed error instead of calling this.
func (b *PacketBuffer) Prepend(n int) []byte {
	if n > b.dataOffset {
		panic("netcore: prepend exceeds headroom")
	}
	b.dataOffset -= n
	return b.data[b.dataOffset : b.dataOffset+n]
}

// SetPayloadLen adjusts footerOffset relative to the current dataOffset.
// It panics if the resulting footer would exceed capacity, the same
// contract as a slice re-slice past cap.
func (b *PacketBuffer) SetPayloadLen(n int) {
	if b.dataOffset+n > len(b.data) {
		panic("netcore: payload length exceeds buffer capacity")
	}
	b.footerOffset = b.dataOffset + n
}

// PacketList is a FIFO of PacketBuffers linked through their own next/prev
// fields, giving O(1) append, push, pop, and removal without a secondary
// allocation. Move semantics mirror the driver's appendPacketList: after
// Append, src is empty.
type PacketList struct {
	head, tail *PacketBuffer
	count      int
}

// NewPacketList returns an empty list.
func NewPacketList() *PacketList {
	return &PacketList{}
}

// Len reports the number of buffers currently linked.
func (l *PacketList) Len() int { return l.count }

// PushBack appends a single buffer.
func (l *PacketList) PushBack(b *PacketBuffer) {
	b.next, b.prev = nil, l.tail
	if l.tail != nil {
		l.tail.next = b
	} else {
		l.head = b
	}
	l.tail = b
	l.count++
}

// PopFront removes and returns the oldest buffer, or nil if empty.
func (l *PacketList) PopFront() *PacketBuffer {
	b := l.head
	if b == nil {
		return nil
	}
	l.head = b.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	b.next, b.prev = nil, nil
	l.count--
	return b
}

// Append moves every buffer in src to the end of l in order, leaving src
// empty. O(1): it relinks the two chains' endpoints rather than copying.
func (l *PacketList) Append(src *PacketList) {
	if src.head == nil {
		return
	}
	if l.tail != nil {
		l.tail.next = src.head
		src.head.prev = l.tail
	} else {
		l.head = src.head
	}
	l.tail = src.tail
	l.count += src.count

	src.head, src.tail, src.count = nil, nil, 0
}

// Remove unlinks b from l in O(1). It is the caller's responsibility to
// know that b is a member of l; Remove does not scan to verify.
func (l *PacketList) Remove(b *PacketBuffer) {
	if b.prev != nil {
		b.prev.next = b.next
	} else if l.head == b {
		l.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else if l.tail == b {
		l.tail = b.prev
	}
	b.next, b.prev = nil, nil
	l.count--
}

// Each calls fn for every buffer from oldest to newest.
func (l *PacketList) Each(fn func(*PacketBuffer)) {
	for b := l.head; b != nil; {
		n := b.next
		fn(b)
		b = n
	}
}
