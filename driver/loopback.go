package driver

import "sync"

// Loopback is an in-memory LinkDevice that immediately "transmits" by
// looping each sent descriptor back into its own receive ring, the same
// role a null/test MAC plays in the teacher's gomock-based suite but
// driveable end to end without a mock. It is used by cmd/netcoresim and
// by tests that exercise the ring engine above a real (if trivial)
// device rather than a fully scripted mock.
type Loopback struct {
	mu sync.Mutex

	nt, nr int

	txDescs  []TxDescriptor
	txOwned  []bool
	txUse    uint32
	txClean  uint32

	rxDescs  []RxDescriptor
	rxStatus []RxStatusEntry
	rxProd   uint32

	pending  uint32
	promisc  bool
	checksum bool

	linkUp   bool
	speed    int
}

// NewLoopback returns a Loopback sized for nt transmit and nr receive
// slots, with the link already up at speedMbps.
func NewLoopback(nt, nr, speedMbps int) *Loopback {
	return &Loopback{
		nt:       nt,
		nr:       nr,
		txDescs:  make([]TxDescriptor, nt),
		txOwned:  make([]bool, nt),
		rxDescs:  make([]RxDescriptor, nr),
		rxStatus: make([]RxStatusEntry, nr),
		linkUp:   true,
		speed:    speedMbps,
	}
}

func (l *Loopback) ReadPendingStatus() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

func (l *Loopback) AckStatus(bits uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending &^= bits
}

func (l *Loopback) ReadPHYLinkStatus() (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.linkUp, l.speed
}

func (l *Loopback) WriteTxDescriptor(idx int, desc TxDescriptor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txDescs[idx] = desc
	l.txOwned[idx] = true
}

// WriteTxProducer "transmits" every newly owned descriptor up to idx by
// copying it straight into the next free RX slot and raising both a TX
// and an RX pending bit, simulating a NIC that loops its own output back
// to its input.
func (l *Loopback) WriteTxProducer(idx uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := l.txUse; i != idx; i = (i + 1) % uint32(l.nt) {
		if !l.txOwned[i] {
			continue
		}
		slot := l.rxProd
		l.rxDescs[slot] = RxDescriptor{PhysAddr: l.txDescs[i].PhysAddr}
		l.rxStatus[slot] = RxStatusEntry{
			SlotIndex: slot,
			Length:    l.txDescs[i].Length,
			Valid:     true,
		}
		l.rxProd = (l.rxProd + 1) % uint32(l.nr)
	}
	l.txUse = idx
	l.txClean = idx
	l.pending |= EventTxPacket | EventRxPacket
}

func (l *Loopback) TxConsumerIndex() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.txClean
}

func (l *Loopback) ClearTxDescriptor(idx int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.txOwned[idx] = false
	l.txDescs[idx] = TxDescriptor{}
}

func (l *Loopback) WriteRxDescriptor(idx int, desc RxDescriptor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rxDescs[idx] = desc
}

func (l *Loopback) ReadRxStatus(idx int) RxStatusEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rxStatus[idx]
}

func (l *Loopback) ClearRxValid(idx int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rxStatus[idx].Valid = false
}

func (l *Loopback) WriteRxFreeProducer(idx uint32) {
	// No-op: this loopback fills RX slots round-robin in WriteTxProducer
	// and never consults free-list credit.
}

func (l *Loopback) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.txOwned {
		l.txOwned[i] = false
		l.txDescs[i] = TxDescriptor{}
	}
	for i := range l.rxStatus {
		l.rxStatus[i] = RxStatusEntry{}
	}
	l.txUse, l.txClean, l.rxProd, l.pending = 0, 0, 0, 0
	return nil
}

func (l *Loopback) SetMode(kind InfoKind, enabled bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch kind {
	case InfoPromiscuousMode:
		l.promisc = enabled
	case InfoChecksumOffload:
		l.checksum = enabled
	}
	return nil
}

func (l *Loopback) Mode(kind InfoKind) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	switch kind {
	case InfoPromiscuousMode:
		return l.promisc
	case InfoChecksumOffload:
		return l.checksum
	}
	return false
}

var _ LinkDevice = (*Loopback)(nil)
