package driver

import (
	netcore "github.com/packetkit/netcore"
)

// pendingTxQueue is the FIFO of buffers ready to be written into the TX
// ring but for which no free descriptor was yet available, bounded by
// bound (spec.md section 3: "Bounded by 2 x Nt (configurable)").
type pendingTxQueue struct {
	list  *netcore.PacketList
	bound int
}

func newPendingTxQueue(bound int) *pendingTxQueue {
	return &pendingTxQueue{list: netcore.NewPacketList(), bound: bound}
}

func (q *pendingTxQueue) count() int { return q.list.Len() }

// wouldExceed reports whether enqueuing n more buffers breaches bound.
func (q *pendingTxQueue) wouldExceed(n int) bool {
	return q.list.Len()+n > q.bound
}

func (q *pendingTxQueue) enqueue(src *netcore.PacketList) {
	q.list.Append(src)
}

func (q *pendingTxQueue) pop() *netcore.PacketBuffer {
	return q.list.PopFront()
}
