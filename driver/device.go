package driver

//go:generate mockgen -source=device.go -destination=mock/device.go -package=mock_driver

// LinkDevice is the hardware register interface a Controller drives: the
// status/mask registers, the TX/RX descriptor slots, and the producer
// doorbells of spec.md section 6's "Hardware register interface". It is
// the seam a simulated or loopback device sits behind in tests, the same
// role NdisApiInterface plays for the teacher's packet filters.
type LinkDevice interface {
	// ReadPendingStatus atomically reads the pending-status register.
	// Called from interrupt (top-half) context: must not block.
	ReadPendingStatus() uint32

	// AckStatus writes bits back to the status register,
	// write-one-to-acknowledge. Called from interrupt context.
	AckStatus(bits uint32)

	// ReadPHYLinkStatus clears hardware edges associated with a PHY
	// status read and reports the current link state and negotiated
	// speed. Called under the device's interrupt spinlock by the
	// bottom half's link refresh, and by Enable at thread level.
	ReadPHYLinkStatus() (up bool, speedMbps int)

	// WriteTxDescriptor populates descriptor index idx of the transmit
	// ring.
	WriteTxDescriptor(idx int, desc TxDescriptor)

	// WriteTxProducer publishes a new TX producer index to the device
	// (the doorbell). Callers issue a write barrier before calling
	// this so prior descriptor writes are visible to the device first.
	WriteTxProducer(idx uint32)

	// TxConsumerIndex reads the hardware's TX consumer index, i.e. how
	// far the device has drained the ring.
	TxConsumerIndex() uint32

	// ClearTxDescriptor zeroes descriptor index idx after its buffer
	// has been reaped.
	ClearTxDescriptor(idx int)

	// WriteRxDescriptor (re)arms receive slot idx with the physical
	// address of a pool-owned payload region.
	WriteRxDescriptor(idx int, desc RxDescriptor)

	// ReadRxStatus reads status ring slot idx.
	ReadRxStatus(idx int) RxStatusEntry

	// ClearRxValid clears the "valid" flag of status ring slot idx
	// after it has been reaped.
	ClearRxValid(idx int)

	// WriteRxFreeProducer publishes receive-free-list credit: the
	// highest index, mod Nr, that software has finished reaping.
	WriteRxFreeProducer(idx uint32)

	// Reset performs a hardware reset; the controller calls this
	// transitioning out of StateStoppedOnError and from Off at init.
	Reset() error

	// SetMode pushes promiscuous/checksum-offload capability flags to
	// hardware; used by GetSetInformation.
	SetMode(kind InfoKind, enabled bool) error

	// Mode reads back the current promiscuous/checksum-offload state.
	Mode(kind InfoKind) bool
}
