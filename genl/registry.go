package genl

import (
	"fmt"
	"runtime"
	"sync"

	netcore "github.com/packetkit/netcore"
)

// maxNameLen bounds a family's name, spec.md section 4.3's "name length
// in (0, maxName]".
const maxNameLen = 63

// Registry is the routing substrate of spec.md section 4.3: a table of
// families keyed by both numeric id and name, with reference-counted
// handles and a reader/writer lock that lets dispatch run concurrently
// with lookups while serializing registration and teardown.
type Registry struct {
	mu sync.RWMutex

	byID   map[uint16]*Family
	byName map[string]*Family

	minID, maxID uint16
	nextID       uint16

	nextGroupBase uint32

	pool *netcore.Pool
}

// NewRegistry returns an empty registry whose dynamically allocated ids
// fall in [minID, maxID], the "protocol range" of spec.md section 3.
// pool is used by the control family's GET_FAMILY handler to allocate
// reply buffers.
func NewRegistry(minID, maxID uint16, pool *netcore.Pool) *Registry {
	return &Registry{
		byID:   make(map[uint16]*Family),
		byName: make(map[string]*Family),
		minID:  minID,
		maxID:  maxID,
		nextID: minID,
		pool:   pool,
	}
}

// Register validates and inserts a new family, returning a handle that
// holds the first reference, per spec.md section 4.3.
func (r *Registry) Register(props Properties) (*FamilyHandle, error) {
	if len(props.Commands) == 0 {
		return nil, fmt.Errorf("genl: %w: family must declare at least one command", netcore.ErrInvalidParameter)
	}
	if len(props.Name) == 0 || len(props.Name) > maxNameLen {
		return nil, fmt.Errorf("genl: %w: name length must be in (0, %d]", netcore.ErrInvalidParameter, maxNameLen)
	}
	if props.ID != 0 && (props.ID < r.minID || props.ID > r.maxID) {
		return nil, fmt.Errorf("genl: %w: id %d outside protocol range [%d, %d]", netcore.ErrInvalidParameter, props.ID, r.minID, r.maxID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[props.Name]; exists {
		return nil, fmt.Errorf("genl: %w: name %q already registered", netcore.ErrDuplicateEntry, props.Name)
	}

	id := props.ID
	if id == 0 {
		allocated, err := r.allocateIDLocked()
		if err != nil {
			return nil, err
		}
		id = allocated
	} else if _, exists := r.byID[id]; exists {
		return nil, fmt.Errorf("genl: %w: id %d already registered", netcore.ErrDuplicateEntry, id)
	}

	f := &Family{
		id:        id,
		name:      props.Name,
		version:   props.Version,
		cmds:      props.Commands,
		groups:    props.Groups,
		groupBase: r.nextGroupBase,
	}
	f.refcount.Store(1)

	r.nextGroupBase += uint32(len(props.Groups))
	r.byID[id] = f
	r.byName[props.Name] = f

	return &FamilyHandle{family: f}, nil
}

// allocateIDLocked scans from nextID, wrapping within [minID, maxID],
// for the first unused id. Caller must hold mu exclusively.
func (r *Registry) allocateIDLocked() (uint16, error) {
	span := uint32(r.maxID) - uint32(r.minID) + 1
	for i := uint32(0); i < span; i++ {
		candidate := r.minID + uint16((uint32(r.nextID-r.minID)+i)%span)
		if _, taken := r.byID[candidate]; !taken {
			r.nextID = candidate + 1
			if r.nextID > r.maxID || r.nextID < r.minID {
				r.nextID = r.minID
			}
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("genl: %w: protocol id range exhausted", netcore.ErrOutOfResources)
}

// Unregister removes handle's family from both indexes, then waits for
// any in-flight dispatch holding a reference to finish before freeing
// the entry, per spec.md section 4.3's remove-then-spin-until-quiescent
// pattern. handle must not be used again after this returns.
func (r *Registry) Unregister(handle *FamilyHandle) {
	f := handle.family

	r.mu.Lock()
	delete(r.byID, f.id)
	delete(r.byName, f.name)
	f.markUnregistering()
	r.mu.Unlock()

	for f.refCount() > 1 {
		runtime.Gosched()
	}
	f.release()
}

// LookupByID finds a family by id under the shared lock and returns a
// handle holding a new reference, or ErrNotFound.
func (r *Registry) LookupByID(id uint16) (*FamilyHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("genl: %w: family id %d", netcore.ErrNotFound, id)
	}
	f.addRef()
	return &FamilyHandle{family: f}, nil
}

// LookupByName finds a family by name under the shared lock and returns
// a handle holding a new reference, or ErrNotFound.
func (r *Registry) LookupByName(name string) (*FamilyHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("genl: %w: family name %q", netcore.ErrNotFound, name)
	}
	f.addRef()
	return &FamilyHandle{family: f}, nil
}
