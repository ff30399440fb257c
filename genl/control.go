package genl

import (
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// Control-family attribute types and commands, spec.md section 6's
// wire-format section: family-id, family-name, and nested
// multicast-groups attributes; GET_FAMILY/NEW_FAMILY/DELETE_FAMILY
// commands (NEW_MULTICAST_GROUP/DELETE_MULTICAST_GROUP are notification
// commands with no registry-mutating counterpart and are not wired).
const (
	AttrFamilyID        uint16 = 1
	AttrFamilyName      uint16 = 2
	AttrMulticastGroups uint16 = 3

	CmdGetFamily    uint8 = 1
	CmdNewFamily    uint8 = 2
	CmdDeleteFamily uint8 = 3
)

// ControlFamilyName is the well-known name of the self-describing
// control family every registry carries, mirroring generic netlink's
// own "nlctrl".
const ControlFamilyName = "nlctrl"

// RegisterControlFamily installs the built-in control family at the
// bottom of the protocol range, giving the registry a self-describing
// entry point per spec.md section 6: GET_FAMILY resolves a name to an
// id/name pair. NEW_FAMILY and DELETE_FAMILY are present in the command
// table for wire completeness but report ErrNotSupported: mutating the
// registry on a peer's behalf would require handing out the original
// registration handle, which the reference-counted lookup path does not
// reconstruct from a bare name or id.
func RegisterControlFamily(r *Registry) (*FamilyHandle, error) {
	return r.Register(Properties{
		ID:      r.minID,
		Name:    ControlFamilyName,
		Version: 1,
		Commands: map[uint8]CommandCallback{
			CmdGetFamily:    r.handleGetFamily,
			CmdNewFamily:    handleUnsupportedMutation,
			CmdDeleteFamily: handleUnsupportedMutation,
		},
	})
}

func (r *Registry) handleGetFamily(sock Socket, attrs []byte, params Params) error {
	nameBytes, err := GetAttribute(attrs, AttrFamilyName)
	if err != nil {
		return fmt.Errorf("genl: %w: GET_FAMILY requires a family-name attribute", netcore.ErrInvalidParameter)
	}
	name := trimNulTail(nameBytes)

	handle, err := r.LookupByName(name)
	if err != nil {
		return fmt.Errorf("genl: %w: family %q", netcore.ErrNotFound, name)
	}
	defer handle.Release()
	f := handle.Family()

	var attrBuf []byte
	attrBuf = EncodeAttribute(attrBuf, AttrFamilyID, uint16ToBytes(f.ID()))
	attrBuf = EncodeAttribute(attrBuf, AttrFamilyName, []byte(f.Name()+"\x00"))

	reply, err := r.pool.Allocate(netlinkHeaderLen+genericHeaderLen, len(attrBuf), 0, nil, 0)
	if err != nil {
		return err
	}
	defer r.pool.Free(reply)
	copy(reply.Payload(), attrBuf)

	return r.SendCommand(sock, reply, r.minID, Params{
		Sequence: params.Sequence,
		PortID:   params.PortID,
		Command:  CmdNewFamily,
		Version:  1,
	})
}

func handleUnsupportedMutation(sock Socket, attrs []byte, params Params) error {
	return fmt.Errorf("genl: %w: control family does not mutate the registry on a peer's behalf", netcore.ErrNotSupported)
}

func trimNulTail(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func uint16ToBytes(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}
