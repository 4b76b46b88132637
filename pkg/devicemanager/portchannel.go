package devicemanager

import (
	"context"
	"fmt"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// SetPortChannels replaces the in-memory port-channel mapping. Only the
// flap-suppression rule consults it; attachment points created before a
// reload keep the channel they were created with.
func (m *DeviceManager) SetPortChannels(rows []*models.PortChannelRow) {
	mapping := make(map[models.SwitchPort]string, len(rows))
	for _, row := range rows {
		if row == nil || row.Channel == "" {
			continue
		}
		mapping[models.SwitchPort{SwitchDPID: row.SwitchDPID, Port: row.Port}] = row.Channel
	}

	m.pcMu.Lock()
	m.portChannels = mapping
	m.pcMu.Unlock()

	m.log.Info().Int("ports", len(mapping)).Msg("Port-channel configuration replaced")
}

// ReloadPortChannels implements Service: it re-reads the port-channel
// table from storage and swaps the mapping in.
func (m *DeviceManager) ReloadPortChannels(ctx context.Context) error {
	if m.sync == nil {
		return nil
	}

	rows, err := m.sync.LoadPortChannels(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload port-channel configuration: %w", err)
	}

	m.SetPortChannels(rows)

	return nil
}

func (m *DeviceManager) portChannelGroup(sp models.SwitchPort) string {
	m.pcMu.RLock()
	defer m.pcMu.RUnlock()

	return m.portChannels[sp]
}
