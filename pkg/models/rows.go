package models

import (
	"fmt"
	"time"
)

// DeviceRow is the persisted projection of a resolved device. The
// in-memory registry is authoritative; rows exist so known devices are
// not re-learned with fresh keys after a restart.
type DeviceRow struct {
	DeviceKey           uint64            `json:"device_key"`
	MAC                 string            `json:"mac"`
	LastSeen            time.Time         `json:"last_seen"`
	EntityClasses       []string          `json:"entity_classes,omitempty"`
	Entities            []Entity          `json:"entities"`
	AttachmentPoints    []AttachmentPoint `json:"attachment_points,omitempty"`
	OldAttachmentPoints []AttachmentPoint `json:"old_attachment_points,omitempty"`
}

// PortChannelRow is one row of the port-channel configuration table. Ports
// sharing a channel are one logical link and exempt from flap supersession.
type PortChannelRow struct {
	ID         string `json:"id"`
	SwitchDPID uint64 `json:"switch_dpid"`
	Port       int    `json:"port"`
	Channel    string `json:"channel"`
}

// RowID derives the storage key for the row from its switch and port.
func (r *PortChannelRow) RowID() string {
	return fmt.Sprintf("%016x|%d", r.SwitchDPID, r.Port)
}

// PacketIn is the inbound observation delivered by the southbound
// collaborator: the raw frame plus where and when it was seen.
type PacketIn struct {
	SwitchDPID uint64    `json:"switch_dpid"`
	Port       int       `json:"port"`
	Data       []byte    `json:"data"`
	Timestamp  time.Time `json:"timestamp"`
}
