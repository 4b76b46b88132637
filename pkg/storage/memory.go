package storage

import (
	"context"
	"sync"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// MemoryStore is an in-process Store used by tests and single-node
// deployments that do not need durability.
type MemoryStore struct {
	mu           sync.RWMutex
	devices      map[uint64]*models.DeviceRow
	portChannels map[string]*models.PortChannelRow
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		devices:      make(map[uint64]*models.DeviceRow),
		portChannels: make(map[string]*models.PortChannelRow),
	}
}

func (m *MemoryStore) UpsertDevice(_ context.Context, row *models.DeviceRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *row
	m.devices[row.DeviceKey] = &clone

	return nil
}

func (m *MemoryStore) DeleteDevice(_ context.Context, deviceKey uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.devices, deviceKey)

	return nil
}

func (m *MemoryStore) ListDevices(_ context.Context) ([]*models.DeviceRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]*models.DeviceRow, 0, len(m.devices))
	for _, row := range m.devices {
		clone := *row
		rows = append(rows, &clone)
	}

	return rows, nil
}

func (m *MemoryStore) UpsertPortChannel(_ context.Context, row *models.PortChannelRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *row
	if clone.ID == "" {
		clone.ID = clone.RowID()
	}
	m.portChannels[clone.ID] = &clone

	return nil
}

func (m *MemoryStore) DeletePortChannel(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.portChannels, id)

	return nil
}

func (m *MemoryStore) ListPortChannels(_ context.Context) ([]*models.PortChannelRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]*models.PortChannelRow, 0, len(m.portChannels))
	for _, row := range m.portChannels {
		clone := *row
		rows = append(rows, &clone)
	}

	return rows, nil
}

func (*MemoryStore) Close() error { return nil }
