//go:build !linux

package netcore

import "unsafe"

// pinBuffer has no page-locking primitive to reach for outside Linux in
// this module's dependency set, so it only derives the faux physical
// address; see pool_linux.go for the Mlock path.
func pinBuffer(data []byte) (uint64, error) {
	if len(data) == 0 {
		return 0, nil
	}
	return uint64(uintptr(unsafe.Pointer(&data[0]))), nil
}
