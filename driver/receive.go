package driver

import (
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// initRx arms every receive slot with a pool-owned payload region and
// resets rxClean to the start of the ring.
func (c *Controller) initRx() error {
	c.rxMu.Lock()
	defer c.rxMu.Unlock()

	for i := 0; i < c.nr; i++ {
		buf, err := c.pool.Allocate(0, c.link.MinPacketSize, 0, &c.link, netcore.AllocFlagDeviceHeaders)
		if err != nil {
			return fmt.Errorf("netcore: %w: arming rx slot %d: %v", netcore.ErrOutOfResources, i, err)
		}
		c.rxBufs[i] = buf
		c.dev.WriteRxDescriptor(i, RxDescriptor{PhysAddr: buf.PhysAddr()})
	}
	c.rxClean = 0
	return nil
}

// reapRx walks the status ring from rxClean, delivering each valid entry
// upstream and crediting the receive free-list once per batch, per
// spec.md section 4.2.
func (c *Controller) reapRx() {
	c.rxMu.Lock()
	defer c.rxMu.Unlock()

	reaped := false

	for {
		entry := c.dev.ReadRxStatus(int(c.rxClean))
		if !entry.Valid {
			break
		}

		slot := int(entry.SlotIndex)
		if buf := c.rxBufs[slot]; buf != nil && entry.Flags&(RxFlagLengthError|RxFlagChecksumError) == 0 {
			buf.ResetView(0, int(entry.Length))
			if c.onRx != nil {
				c.onRx(buf)
			}
		}

		c.dev.ClearRxValid(int(c.rxClean))
		c.rxClean = (c.rxClean + 1) % uint32(c.nr)
		reaped = true
	}

	if reaped {
		c.dev.WriteRxFreeProducer((c.rxClean - 1 + uint32(c.nr)) % uint32(c.nr))
	}
}
