package models

import (
	"fmt"
	"time"
)

// SwitchPort identifies a single port on a single switch.
type SwitchPort struct {
	SwitchDPID uint64 `json:"switch_dpid"`
	Port       int    `json:"port"`
}

func (s SwitchPort) String() string {
	return fmt.Sprintf("%016x/%d", s.SwitchDPID, s.Port)
}

// AttachmentPoint records where a device has been observed. Current
// attachment points live on the device's active list; superseded ones are
// moved to the old list and may be marked blocked for flap suppression.
type AttachmentPoint struct {
	SwitchPort
	LastSeen     time.Time `json:"last_seen"`
	Blocked      bool      `json:"blocked"`
	BlockedSince time.Time `json:"blocked_since,omitempty"`
	PortChannel  string    `json:"port_channel,omitempty"`
}
