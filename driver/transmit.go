package driver

import (
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// Send submits packetList for transmission, per spec.md section 4.2. On a
// successful return, ownership of every buffer in packetList has
// transferred to the controller, packetList is left empty, and the
// caller must not touch them again. On error the list and its buffers
// are left untouched: ownership never transferred.
func (c *Controller) Send(packetList *netcore.PacketList) error {
	if c.State() != StateRunning {
		return fmt.Errorf("netcore: %w", netcore.ErrNoConnection)
	}

	c.txMu.Lock()
	defer c.txMu.Unlock()

	n := packetList.Len()
	for c.pending.wouldExceed(n) {
		if !c.waitForSpace || n > c.pending.bound {
			return fmt.Errorf("netcore: %w: pending queue full", netcore.ErrResourceBusy)
		}
		// Reap completed descriptors without re-acquiring the TX
		// lock (already held) and retry; a production driver would
		// wait on a condition variable signalled by the bottom half
		// instead of spinning.
		c.reapTxLocked()
	}

	c.pending.enqueue(packetList)
	c.flushPendingLocked()
	return nil
}

// flushPendingLocked drains the pending queue into free TX descriptors.
// Caller must hold txMu.
func (c *Controller) flushPendingLocked() {
	advanced := false

	for {
		inFlight := (c.txUse + uint32(c.nt) - c.txClean) % uint32(c.nt)
		if inFlight >= uint32(c.nt-1) {
			// One slot is always left empty so Use can never catch
			// back up to a stale Clean.
			break
		}
		buf := c.pending.pop()
		if buf == nil {
			break
		}

		desc := TxDescriptor{
			PhysAddr: buf.PhysAddr() + uint64(buf.DataOffset()),
			Length:   uint32(buf.FooterOffset() - buf.DataOffset()),
			Flags:    TxFlagEndOfPacket,
		}
		c.dev.WriteTxDescriptor(int(c.txUse), desc)
		c.ownerMap[c.txUse] = buf

		c.txUse = (c.txUse + 1) % uint32(c.nt)
		advanced = true
	}

	if advanced {
		// Write barrier: descriptor contents must be visible to the
		// device before it observes the new producer index. On real
		// hardware this is an explicit fence; WriteTxDescriptor's
		// happens-before relationship with WriteTxProducer through
		// the txMu critical section plays that role here.
		c.dev.WriteTxProducer(c.txUse)
	}
}

// reapTx reclaims descriptors the device has finished transmitting,
// returning their buffers to the pool, and retries flushPending in case
// reaping freed room for queued sends.
func (c *Controller) reapTx() {
	c.txMu.Lock()
	defer c.txMu.Unlock()
	c.reapTxLocked()
}

func (c *Controller) reapTxLocked() {
	hwClean := c.dev.TxConsumerIndex()

	freed := false
	for i := c.txClean; i != hwClean; i = (i + 1) % uint32(c.nt) {
		buf := c.ownerMap[i]
		if buf != nil {
			c.pool.Free(buf)
			c.ownerMap[i] = nil
		}
		c.dev.ClearTxDescriptor(int(i))
		freed = true
	}
	c.txClean = hwClean

	if freed {
		c.flushPendingLocked()
	}
}
