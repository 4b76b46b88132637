//go:generate mockgen -destination=mock_devicemanager.go -package=devicemanager github.com/ClassWYZ/floodlight/pkg/devicemanager Topology,Service

// Package devicemanager tracks end hosts inferred from passively observed
// packets. It resolves entities into devices under a pluggable identity
// schema, maintains per-device attachment points with flap suppression
// and port-channel awareness, and mirrors device state into storage.
package devicemanager

import (
	"context"

	"github.com/ClassWYZ/floodlight/pkg/classifier"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

// Topology answers whether a switch port is an inter-switch link.
// Internal ports never become host attachment points. The device manager
// fails open: a topology error is treated as "not internal" so host
// discovery is never blocked by a slow or broken topology collaborator.
type Topology interface {
	IsInternal(ctx context.Context, switchDPID uint64, port int) (bool, error)
}

// Service is the registry surface consumed by the dispatcher and the
// administrative read API.
type Service interface {
	// LearnDeviceByEntity finds or creates the device owning the entity
	// and merges the observation into it. Learning an identical entity
	// twice returns the same device pointer both times.
	LearnDeviceByEntity(ctx context.Context, entity *models.Entity) (*Device, error)

	// FindDeviceByEntity performs the lookup half of learning without
	// mutating any state. Absence is a normal not-found result.
	FindDeviceByEntity(entity *models.Entity) (*Device, bool)

	GetDevice(deviceKey uint64) (*Device, bool)
	FindDevicesByMAC(mac uint64) []*Device
	FindDevicesByMACVlan(mac uint64, vlan *uint16) []*Device
	FindDevicesByIPv4(ip uint32) []*Device
	AllDevices() []*Device

	// SetEntityClassifier swaps the active classifier. Devices already
	// resolved keep their identities; only observations classified after
	// the swap use the new classifier.
	SetEntityClassifier(c classifier.EntityClassifier)

	// ReloadPortChannels re-reads the port-channel configuration table
	// from storage and replaces the in-memory mapping.
	ReloadPortChannels(ctx context.Context) error
}
