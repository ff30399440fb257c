package driver

import "fmt"

// TopHalf runs at interrupt level: it must not block, must not touch the
// heap, and must not acquire any mutex beyond the interrupt spinlock
// itself. It ORs newly observed bits into pendingBits, acknowledges them
// to hardware, and reports whether this device claimed the interrupt.
func (c *Controller) TopHalf() (claimed bool) {
	bits := c.dev.ReadPendingStatus()
	if bits == 0 {
		return false
	}

	c.irqMu.Lock()
	for {
		old := c.pendingBits.Load()
		if c.pendingBits.CompareAndSwap(old, old|bits) {
			break
		}
	}
	c.dev.AckStatus(bits)
	c.irqMu.Unlock()

	return true
}

// BottomHalf runs at thread/dispatch level. It atomically swaps out the
// accumulated pending bits and acts on each: RX/TX reaping, buffer-error
// recovery, a fatal path that stops the controller, and a link-change
// path that refreshes PHY state and notifies upstream. The fatal path
// does not reset or re-enable the controller: it leaves it in
// StateStoppedOnError until a caller invokes Reset and Enable.
func (c *Controller) BottomHalf() {
	bits := c.pendingBits.Swap(0)
	if bits == 0 {
		return
	}

	if bits&EventRxPacket != 0 {
		c.reapRx()
	}
	if bits&EventTxPacket != 0 {
		c.reapTx()
	}
	if bits&EventBufferError != 0 {
		c.recoverBufferError()
	}
	if bits&EventFatalError != 0 {
		c.handleFatal(fmt.Errorf("netcore: device reported a fatal interrupt condition"))
		return
	}
	if bits&EventLinkChange != 0 {
		c.refreshLinkState()
	}
}

// recoverBufferError logs and recovers from a non-fatal buffer condition
// (e.g. a single dropped frame); the ring itself needs no repair since
// reapRx/reapTx already treat a short or errored entry as non-fatal.
func (c *Controller) recoverBufferError() {
	fmt.Println("netcore/driver: recovered from buffer error interrupt")
}

// refreshLinkState raises to interrupt level to read the PHY registers
// under the interrupt spinlock, then posts an up/down notification
// upstream at thread/dispatch level.
func (c *Controller) refreshLinkState() {
	c.irqMu.Lock()
	up, speed := c.dev.ReadPHYLinkStatus()
	c.irqMu.Unlock()

	ls := LinkDown
	if up {
		ls = LinkUp
	}
	if c.notify != nil {
		c.notify(ls, speed)
	}
}
