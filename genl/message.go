package genl

import (
	"encoding/binary"
	"fmt"

	netcore "github.com/packetkit/netcore"
)

// Wire layout: [netlinkHeader | genericHeader | attribute*], the same
// [u16 length | u16 type | value | pad-to-4] TLV shape spec.md section 6
// describes for the control family.
const (
	netlinkHeaderLen = 16
	genericHeaderLen = 4
	attrHeaderLen    = 4
	attrAlign        = 4
)

// netlinkHeader carries the outer envelope: total message length, the
// message type (= family id), flags, sequence number, and source port id.
type netlinkHeader struct {
	Len      uint32
	Type     uint16
	Flags    uint16
	Sequence uint32
	PortID   uint32
}

func (h netlinkHeader) encode(buf []byte) {
	binary.LittleEndian.PutUint32(buf[0:4], h.Len)
	binary.LittleEndian.PutUint16(buf[4:6], h.Type)
	binary.LittleEndian.PutUint16(buf[6:8], h.Flags)
	binary.LittleEndian.PutUint32(buf[8:12], h.Sequence)
	binary.LittleEndian.PutUint32(buf[12:16], h.PortID)
}

func decodeNetlinkHeader(buf []byte) netlinkHeader {
	return netlinkHeader{
		Len:      binary.LittleEndian.Uint32(buf[0:4]),
		Type:     binary.LittleEndian.Uint16(buf[4:6]),
		Flags:    binary.LittleEndian.Uint16(buf[6:8]),
		Sequence: binary.LittleEndian.Uint32(buf[8:12]),
		PortID:   binary.LittleEndian.Uint32(buf[12:16]),
	}
}

// genericHeader carries the family-specific command id, protocol
// version, and two reserved bytes.
type genericHeader struct {
	Command uint8
	Version uint8
	// reserved: 2 bytes, always zero
}

func (h genericHeader) encode(buf []byte) {
	buf[0] = h.Command
	buf[1] = h.Version
	buf[2] = 0
	buf[3] = 0
}

func decodeGenericHeader(buf []byte) genericHeader {
	return genericHeader{Command: buf[0], Version: buf[1]}
}

// Params bundles the out-of-band fields a dispatch callback gets beyond
// the raw attribute blob: the sequence number and source port id from
// the netlink header, and the command/version pair from the generic
// header. It carries no destination address.
type Params struct {
	Sequence uint32
	PortID   uint32
	Command  uint8
	Version  uint8
}

// alignUp4 rounds n up to the next multiple of attrAlign.
func alignUp4(n int) int {
	return (n + attrAlign - 1) &^ (attrAlign - 1)
}

// EncodeAttribute appends a single TLV attribute (type, value) to buf,
// padding the tail to a 4-byte boundary; length in the header includes
// the 4-byte header itself but not the padding, per spec.md section 6.
func EncodeAttribute(buf []byte, attrType uint16, value []byte) []byte {
	length := attrHeaderLen + len(value)
	start := len(buf)
	total := alignUp4(length)

	buf = append(buf, make([]byte, total)...)
	binary.LittleEndian.PutUint16(buf[start:start+2], uint16(length))
	binary.LittleEndian.PutUint16(buf[start+2:start+4], attrType)
	copy(buf[start+attrHeaderLen:start+length], value)
	return buf
}

// GetAttribute walks the fixed-alignment TLV stream in attrs looking for
// the first entry whose type equals want, per spec.md section 4.3. A
// short header or a length that overruns the remaining bytes ends the
// walk with ErrNotFound, the documented behavior for a malformed or
// incomplete stream rather than a separate parse error.
func GetAttribute(attrs []byte, want uint16) ([]byte, error) {
	off := 0
	for off+attrHeaderLen <= len(attrs) {
		length := int(binary.LittleEndian.Uint16(attrs[off : off+2]))
		attrType := binary.LittleEndian.Uint16(attrs[off+2 : off+4])

		if length < attrHeaderLen || off+length > len(attrs) {
			break
		}
		if attrType == want {
			return attrs[off+attrHeaderLen : off+length], nil
		}
		off += alignUp4(length)
	}
	return nil, fmt.Errorf("genl: %w: attribute %d", netcore.ErrNotFound, want)
}
