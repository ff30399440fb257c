package genl

import (
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// Dispatch parses buf as a full wire message, looks up the family named
// by the netlink header's type field, and invokes the callback matching
// the generic header's command id, per spec.md section 4.3. The family
// reference is released before Dispatch returns, including on error.
func (r *Registry) Dispatch(sock Socket, buf []byte) error {
	if len(buf) < netlinkHeaderLen+genericHeaderLen {
		return fmt.Errorf("genl: %w: message shorter than header", netcore.ErrInvalidParameter)
	}

	nlh := decodeNetlinkHeader(buf[:netlinkHeaderLen])
	if int(nlh.Len) > len(buf) || int(nlh.Len) < netlinkHeaderLen+genericHeaderLen {
		return fmt.Errorf("genl: %w: declared length %d inconsistent with %d-byte message", netcore.ErrInvalidParameter, nlh.Len, len(buf))
	}

	gh := decodeGenericHeader(buf[netlinkHeaderLen : netlinkHeaderLen+genericHeaderLen])
	attrs := buf[netlinkHeaderLen+genericHeaderLen : nlh.Len]

	handle, err := r.LookupByID(nlh.Type)
	if err != nil {
		return fmt.Errorf("genl: %w: unknown family %d", netcore.ErrNotSupported, nlh.Type)
	}
	defer handle.Release()

	cmd, ok := handle.Family().cmds[gh.Command]
	if !ok {
		return fmt.Errorf("genl: %w: family %q has no command %d", netcore.ErrNotSupported, handle.Family().Name(), gh.Command)
	}

	params := Params{
		Sequence: nlh.Sequence,
		PortID:   nlh.PortID,
		Command:  gh.Command,
		Version:  gh.Version,
	}
	return cmd(sock, attrs, params)
}

// SendCommand prepends the generic-command header into buf's reserved
// headroom, then the netlink envelope naming familyID, and hands the
// fully framed message to sock, per spec.md section 4.3. buf must have
// been allocated with at least netlinkHeaderLen+genericHeaderLen bytes
// of header room (e.g. via netcore.Pool.Allocate's header argument).
func (r *Registry) SendCommand(sock Socket, buf *netcore.PacketBuffer, familyID uint16, params Params) error {
	const needed = netlinkHeaderLen + genericHeaderLen
	if buf.Headroom() < needed {
		return fmt.Errorf("genl: %w: buffer has %d bytes of headroom, need %d", netcore.ErrInvalidParameter, buf.Headroom(), needed)
	}

	genericHeader{Command: params.Command, Version: params.Version}.encode(buf.Prepend(genericHeaderLen))

	payloadLen := buf.FooterOffset() - buf.DataOffset()
	nlh := netlinkHeader{
		Len:      uint32(netlinkHeaderLen + payloadLen),
		Type:     familyID,
		Sequence: params.Sequence,
		PortID:   params.PortID,
	}
	nlh.encode(buf.Prepend(netlinkHeaderLen))

	return sock.Send(buf.Payload())
}
