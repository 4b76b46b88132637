package devicemanager

import (
	"context"
	"fmt"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// Startup reconstructs the in-memory registry from storage before any
// packet observation is accepted. A read failure aborts startup: without
// the persisted baseline, previously known hosts would be learned again
// under fresh device keys.
func (m *DeviceManager) Startup(ctx context.Context) error {
	if m.sync == nil {
		return nil
	}

	pcRows, err := m.sync.LoadPortChannels(ctx)
	if err != nil {
		return fmt.Errorf("startup aborted: %w", err)
	}
	m.SetPortChannels(pcRows)

	rows, err := m.sync.LoadDevices(ctx)
	if err != nil {
		return fmt.Errorf("startup aborted: %w", err)
	}

	if err := m.hydrate(rows); err != nil {
		return fmt.Errorf("startup aborted: %w", err)
	}

	m.sync.Start(ctx)

	m.log.Info().Int("devices", len(rows)).Msg("Registry hydrated from storage")

	return nil
}

// hydrate rebuilds devices from persisted rows. Identities are recomputed
// under the active classifier so the indices match what future
// observations will produce.
func (m *DeviceManager) hydrate(rows []*models.DeviceRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range rows {
		if row == nil || len(row.Entities) == 0 {
			continue
		}

		dev := &Device{
			key:      row.DeviceKey,
			lastSeen: row.LastSeen,
		}

		for i := range row.Entities {
			e := row.Entities[i]
			dev.entities = append(dev.entities, &e)
		}

		classes, fields := m.classifyEntity(dev.entities[0])
		dev.classes = classes

		for _, e := range dev.entities {
			dev.identityKeys = appendUnique(dev.identityKeys, identityKey(e, classes, fields))
		}

		for i := range row.AttachmentPoints {
			ap := row.AttachmentPoints[i]
			dev.attachments = append(dev.attachments, &ap)
		}
		for i := range row.OldAttachmentPoints {
			ap := row.OldAttachmentPoints[i]
			dev.oldAttachments = append(dev.oldAttachments, &ap)
		}

		if err := m.installLocked(dev); err != nil {
			return err
		}

		if row.DeviceKey > m.deviceKeyCounter {
			m.deviceKeyCounter = row.DeviceKey
		}
	}

	return nil
}

// Shutdown flushes pending storage writes.
func (m *DeviceManager) Shutdown() {
	if m.sync != nil {
		m.sync.Stop()
	}
}
