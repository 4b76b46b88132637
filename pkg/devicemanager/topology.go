package devicemanager

import (
	"context"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// StaticTopology is a Topology backed by a fixed set of internal ports,
// typically loaded from configuration. Deployments with a live topology
// service plug in their own implementation.
type StaticTopology struct {
	internal map[models.SwitchPort]struct{}
}

func NewStaticTopology(ports []models.SwitchPort) *StaticTopology {
	internal := make(map[models.SwitchPort]struct{}, len(ports))
	for _, sp := range ports {
		internal[sp] = struct{}{}
	}

	return &StaticTopology{internal: internal}
}

func (t *StaticTopology) IsInternal(_ context.Context, switchDPID uint64, port int) (bool, error) {
	_, ok := t.internal[models.SwitchPort{SwitchDPID: switchDPID, Port: port}]
	return ok, nil
}
