package models

import (
	"fmt"
	"time"
)

// Entity is one normalized packet observation. It carries the identity
// fields extracted from a single frame seen at a switch port; which of
// them participate in device identity is decided by the active entity
// classifier, not by the entity itself.
type Entity struct {
	MAC        uint64    `json:"mac"`
	VLAN       *uint16   `json:"vlan,omitempty"`
	IPv4       *uint32   `json:"ipv4,omitempty"`
	SwitchDPID uint64    `json:"switch_dpid"`
	SwitchPort int       `json:"switch_port"`
	LastSeen   time.Time `json:"last_seen"`
}

// FieldsEqual reports whether two entities carry the same identity field
// tuple. The observation timestamp is deliberately excluded: re-seeing a
// known entity refreshes its last-seen time instead of inserting a
// duplicate.
func (e *Entity) FieldsEqual(other *Entity) bool {
	if other == nil {
		return false
	}

	if e.MAC != other.MAC || e.SwitchDPID != other.SwitchDPID || e.SwitchPort != other.SwitchPort {
		return false
	}

	if (e.VLAN == nil) != (other.VLAN == nil) {
		return false
	}
	if e.VLAN != nil && *e.VLAN != *other.VLAN {
		return false
	}

	if (e.IPv4 == nil) != (other.IPv4 == nil) {
		return false
	}
	if e.IPv4 != nil && *e.IPv4 != *other.IPv4 {
		return false
	}

	return true
}

// MACString renders the entity's MAC in colon-separated form.
func (e *Entity) MACString() string {
	return FormatMAC(e.MAC)
}

// FormatMAC renders the low 48 bits of v as a colon-separated MAC address.
func FormatMAC(v uint64) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		byte(v>>40), byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// FormatIPv4 renders v in dotted-quad form.
func FormatIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
