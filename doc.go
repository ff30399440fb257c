// Package netcore implements the packet-buffer cache shared by the
// network I/O subsystem: a process-wide pool of reusable, DMA-capable
// buffers allocated and reclaimed under per-link alignment and physical
// address constraints.
//
// Two sibling packages build on top of it: driver, which operates a NIC's
// transmit/receive descriptor rings against the pool, and genl, which
// registers typed message families and dispatches commands to them.
package netcore
