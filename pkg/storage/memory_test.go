package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

func TestMemoryStoreDevices(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rows, err := s.ListDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)

	row := &models.DeviceRow{
		DeviceKey: 1,
		MAC:       "00:00:00:00:00:01",
		LastSeen:  time.Now(),
	}
	require.NoError(t, s.UpsertDevice(ctx, row))

	// A later snapshot replaces the row in place.
	row2 := &models.DeviceRow{DeviceKey: 1, MAC: "00:00:00:00:00:01", LastSeen: row.LastSeen.Add(time.Minute)}
	require.NoError(t, s.UpsertDevice(ctx, row2))

	rows, err = s.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].LastSeen.Equal(row2.LastSeen))

	require.NoError(t, s.DeleteDevice(ctx, 1))
	require.NoError(t, s.DeleteDevice(ctx, 1)) // absent rows delete cleanly

	rows, err = s.ListDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMemoryStorePortChannels(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.UpsertPortChannel(ctx, &models.PortChannelRow{
		ID: "po1-1", SwitchDPID: 1, Port: 1, Channel: "po1",
	}))
	require.NoError(t, s.UpsertPortChannel(ctx, &models.PortChannelRow{
		ID: "po1-2", SwitchDPID: 1, Port: 2, Channel: "po1",
	}))

	rows, err := s.ListPortChannels(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, s.DeletePortChannel(ctx, "po1-1"))

	rows, err = s.ListPortChannels(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "po1-2", rows[0].ID)

	require.NoError(t, s.Close())
}
