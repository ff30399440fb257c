// Package driver operates a NIC's transmit and receive descriptor rings
// in cooperation with a hardware (or simulated) device and with arriving
// send requests, per spec.md section 4.2. It consumes netcore.Pool for
// inbound copies and for freeing completed outbound buffers.
package driver

import "fmt"

// State is the controller lifecycle state machine of spec.md section 4.2:
// Off -> ResetDone -> Configured -> Enabled -> Running, with a degraded
// path Running -> StoppedOnError -> ResetDone.
type State int

const (
	StateOff State = iota
	StateResetDone
	StateConfigured
	StateEnabled
	StateRunning
	StateStoppedOnError
)

func (s State) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateResetDone:
		return "ResetDone"
	case StateConfigured:
		return "Configured"
	case StateEnabled:
		return "Enabled"
	case StateRunning:
		return "Running"
	case StateStoppedOnError:
		return "StoppedOnError"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LinkState mirrors the up/down/negotiating states reported by PHY
// status reads and surfaced to the networking core via SetLinkState.
type LinkState int

const (
	LinkDown LinkState = iota
	LinkNegotiating
	LinkUp
)

func (s LinkState) String() string {
	switch s {
	case LinkDown:
		return "Down"
	case LinkNegotiating:
		return "Negotiating"
	case LinkUp:
		return "Up"
	default:
		return fmt.Sprintf("LinkState(%d)", int(s))
	}
}

// InfoKind selects the property queried or set through GetSetInformation.
type InfoKind int

const (
	InfoPromiscuousMode InfoKind = iota
	InfoChecksumOffload
)

// Interrupt event bits, write-one-to-acknowledge against the device's
// status register. Named after the NE2000/ENET-style ISR bit layout: a
// received-packet bit, a transmitted-packet bit, buffer/overflow errors,
// a fatal bit for conditions that demand a reset, and a link-change bit
// for PHY events.
const (
	EventRxPacket uint32 = 1 << iota
	EventTxPacket
	EventBufferError
	EventFatalError
	EventLinkChange
)

// defaultPendingMultiplier sets the default bound of the PendingTxQueue,
// expressed as a multiple of Nt.
const defaultPendingMultiplier = 2
