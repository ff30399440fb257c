package driver

import (
	"fmt"
	"sync"
	"sync/atomic"

	netcore "github.com/packetkit/netcore"
)

// NotifyFunc receives link-state transitions, spec.md section 6's
// setLinkState(link, up, speed).
type NotifyFunc func(state LinkState, speedMbps int)

// Controller is the per-device ring engine of spec.md section 4.2: it
// owns a transmit ring of fixed capacity Nt, a receive ring of fixed
// capacity Nr, a pending software queue, and the interrupt top/bottom
// split. It consumes a netcore.Pool for inbound copies and for freeing
// completed outbound buffers.
type Controller struct {
	dev  LinkDevice
	pool *netcore.Pool
	link netcore.LinkProperties

	nt int
	nr int

	// TX lock: covers the pending queue, txUse, txClean, ownerMap, and
	// the producer doorbell (spec.md section 5).
	txMu     sync.Mutex
	txUse    uint32
	txClean  uint32
	ownerMap    []*netcore.PacketBuffer
	pending     *pendingTxQueue
	waitForSpace bool

	// RX lock: covers reapRx and receive-ring reset.
	rxMu    sync.Mutex
	rxClean uint32
	rxBufs  []*netcore.PacketBuffer

	// Configuration mutex: covers enabled link capabilities and the
	// hardware-register update that follows.
	cfgMu sync.Mutex

	// Interrupt spinlock: protects pendingBits and any PHY register
	// I/O initiated from thread level (raise-take-drop-lower).
	irqMu       sync.Mutex
	pendingBits atomic.Uint32

	stateMu sync.Mutex
	state   State

	notify  NotifyFunc
	onRx    func(buf *netcore.PacketBuffer)
	onFatal func(err error)
}

// Config bundles the construction-time parameters of a Controller.
type Config struct {
	Nt             int
	Nr             int
	Link           netcore.LinkProperties
	PendingBound   int  // 0 => defaultPendingMultiplier * Nt
	WaitForSpace   bool // if true, Send blocks for room instead of the spec's default of dropping with resource-busy
	OnReceive      func(buf *netcore.PacketBuffer)
	OnLinkChange   NotifyFunc
	OnFatal        func(err error)
}

// NewController constructs a Controller bound to dev and pool, in state
// Off. Call Reset then Enable before Send will admit traffic.
func NewController(dev LinkDevice, pool *netcore.Pool, cfg Config) (*Controller, error) {
	if cfg.Nt <= 1 || cfg.Nr <= 0 {
		return nil, fmt.Errorf("netcore: %w: ring capacities must be positive (Nt>1, Nr>0)", netcore.ErrInvalidParameter)
	}
	bound := cfg.PendingBound
	if bound == 0 {
		bound = defaultPendingMultiplier * cfg.Nt
	}

	c := &Controller{
		dev:      dev,
		pool:     pool,
		link:     cfg.Link,
		nt:       cfg.Nt,
		nr:       cfg.Nr,
		ownerMap:     make([]*netcore.PacketBuffer, cfg.Nt),
		pending:      newPendingTxQueue(bound),
		waitForSpace: cfg.WaitForSpace,
		rxBufs:       make([]*netcore.PacketBuffer, cfg.Nr),
		state:    StateOff,
		notify:   cfg.OnLinkChange,
		onRx:     cfg.OnReceive,
		onFatal:  cfg.OnFatal,
	}
	return c, nil
}

// State returns the controller's current lifecycle state.
func (c *Controller) State() State {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

func (c *Controller) setState(s State) {
	c.stateMu.Lock()
	c.state = s
	c.stateMu.Unlock()
}

// Reset transitions Off|StoppedOnError -> ResetDone, resetting hardware
// and both rings. It is a thread-level, blocking call.
func (c *Controller) Reset() error {
	if err := c.dev.Reset(); err != nil {
		return fmt.Errorf("netcore: %w: hardware reset failed: %v", netcore.ErrDeviceIO, err)
	}

	c.txMu.Lock()
	c.txUse, c.txClean = 0, 0
	for i := range c.ownerMap {
		c.ownerMap[i] = nil
	}
	c.txMu.Unlock()

	c.rxMu.Lock()
	c.rxClean = 0
	for i := range c.rxBufs {
		c.rxBufs[i] = nil
	}
	c.rxMu.Unlock()

	c.pendingBits.Store(0)
	c.setState(StateResetDone)
	return nil
}

// Enable reads the PHY link state, re-arms the receive ring, and
// transitions ResetDone|Configured -> Running, then reports the link
// state upstream. Only Running admits Send. It does not program MAC
// speed/duplex, and it enters Running even when the PHY reports the
// link down.
func (c *Controller) Enable() error {
	switch c.State() {
	case StateResetDone, StateConfigured:
	default:
		return fmt.Errorf("netcore: %w: Enable requires ResetDone or Configured, got %s", netcore.ErrInvalidParameter, c.State())
	}

	up, speed := c.dev.ReadPHYLinkStatus()

	if err := c.initRx(); err != nil {
		return err
	}

	c.setState(StateRunning)

	ls := LinkDown
	if up {
		ls = LinkUp
	}
	if c.notify != nil {
		c.notify(ls, speed)
	}
	return nil
}

// handleFatal stops the controller, reports err to onFatal, and leaves it
// in StateStoppedOnError for a subsequent Reset.
func (c *Controller) handleFatal(err error) {
	c.setState(StateStoppedOnError)
	if c.onFatal != nil {
		c.onFatal(err)
	}
}
