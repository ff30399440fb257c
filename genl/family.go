package genl

import "sync/atomic"

// familyState is the per-entry lifecycle of spec.md section 4.3:
// Registered -> Unregistering -> Destroyed. Unregistering is transient:
// the entry is already unreachable through the registry's indexes but
// may still be referenced by an in-flight callback.
type familyState int32

const (
	familyRegistered familyState = iota
	familyUnregistering
)

// Socket is the minimal surface a dispatch callback needs to reply
// through; netcoresim's demo and tests satisfy it with a trivial
// in-memory stand-in rather than a real datagram socket, which spec.md
// section 1 leaves as an external collaborator.
type Socket interface {
	Send(buf []byte) error
}

// CommandCallback handles one incoming command for a family. attrs is a
// view over the message's attribute blob; params carries the envelope
// fields dispatch parsed out of the netlink and generic headers.
type CommandCallback func(sock Socket, attrs []byte, params Params) error

// MulticastGroup is a named broadcast channel scoped to a family, whose
// group id is translated into a system-wide offset by the registry at
// registration time.
type MulticastGroup struct {
	Name string
}

// Properties describes a family to Register. Id is either zero (request
// dynamic allocation) or a value already in the registry's protocol
// range.
type Properties struct {
	ID       uint16
	Name     string
	Version  uint8
	Commands map[uint8]CommandCallback
	Groups   []MulticastGroup
}

// Family is a registered entry: a numeric id, a bounded-length name, its
// command table, its declared multicast groups, and a reference count
// that in-flight dispatches hold open against a concurrent Unregister.
type Family struct {
	id      uint16
	name    string
	version uint8
	cmds    map[uint8]CommandCallback
	groups  []MulticastGroup

	// groupBase is the system-wide offset this family's group indices
	// (1..len(groups)) translate into.
	groupBase uint32

	refcount atomic.Int32
	state    atomic.Int32
}

// ID returns the family's numeric id.
func (f *Family) ID() uint16 { return f.id }

// Name returns the family's registered name.
func (f *Family) Name() string { return f.name }

// GroupOffset translates a family-local 1-based group index into its
// system-wide id, or ok=false if idx is out of range.
func (f *Family) GroupOffset(idx int) (offset uint32, ok bool) {
	if idx < 1 || idx > len(f.groups) {
		return 0, false
	}
	return f.groupBase + uint32(idx-1), true
}

func (f *Family) addRef()     { f.refcount.Add(1) }
func (f *Family) release()    { f.refcount.Add(-1) }
func (f *Family) refCount() int32 { return f.refcount.Load() }

func (f *Family) markUnregistering() {
	f.state.Store(int32(familyUnregistering))
}

// FamilyHandle is the caller-visible reference returned by Register and
// the lookup calls. It pins the family's refcount open until Release is
// called, the mechanism spec.md section 4.3 relies on to let
// Unregister's post-removal wait observe quiescence.
type FamilyHandle struct {
	family *Family
}

// Family returns the handle's underlying entry.
func (h *FamilyHandle) Family() *Family { return h.family }

// Release drops the reference this handle holds. A handle must be
// released exactly once.
func (h *FamilyHandle) Release() {
	h.family.release()
}
