//go:build linux

package netcore

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// pinBuffer locks data's pages resident so the kernel page reclaimer
// cannot move or evict memory a device may be DMA-ing into, and derives a
// faux "physical" address from the slice's virtual address. A real driver
// would instead consult the IOMMU/DMA-mapping API for the device-visible
// address; absent that layer here, the virtual address stands in for it,
// which is sufficient to exercise the pool's alignment and max-address
// fitting logic.
func pinBuffer(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if err := unix.Mlock(data); err != nil {
		return 0, err
	}
	return uint64(uintptr(unsafe.Pointer(&data[0]))), nil
}
