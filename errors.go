package netcore

import "errors"

// Sentinel errors for the abstract taxonomy of spec.md section 7. Callers
// match with errors.Is; packages in this module wrap these with
// fmt.Errorf("...: %w", ...) to attach call-site context, the same shape
// the teacher used to wrap windows package errors.
var (
	// ErrOutOfResources covers allocator and id-space exhaustion: the
	// free-list held nothing big enough and the heap rejected the
	// request, or no id remained in a registry's allocation range.
	ErrOutOfResources = errors.New("netcore: out of resources")

	// ErrResourceBusy is transient back-pressure: a ring or pending
	// queue is full. The caller may retry.
	ErrResourceBusy = errors.New("netcore: resource busy")

	// ErrNoConnection is returned by send paths when the link is down.
	ErrNoConnection = errors.New("netcore: no network connection")

	// ErrDeviceIO covers DMA timeouts, stuck queues, and other
	// unrecoverable interrupt-reported conditions.
	ErrDeviceIO = errors.New("netcore: device I/O error")

	// ErrNotSupported is returned for an unknown family or command so a
	// peer can distinguish it from a protocol error.
	ErrNotSupported = errors.New("netcore: not supported")

	// ErrInvalidParameter covers malformed requests: bad version,
	// empty command table, out-of-range name length.
	ErrInvalidParameter = errors.New("netcore: invalid parameter")

	// ErrDataLengthMismatch is a size-constrained attribute whose
	// length does not match its declared type.
	ErrDataLengthMismatch = errors.New("netcore: attribute length mismatch")

	// ErrCancelled marks a caller-initiated abort of in-flight work.
	ErrCancelled = errors.New("netcore: cancelled")

	// ErrDuplicateEntry is returned when a name or id collides with an
	// existing registry entry.
	ErrDuplicateEntry = errors.New("netcore: duplicate entry")

	// ErrNotFound is a registry lookup miss.
	ErrNotFound = errors.New("netcore: not found")

	// ErrVersionMismatch is an unsupported protocol version on an
	// incoming command.
	ErrVersionMismatch = errors.New("netcore: version mismatch")
)
