package devicemanager

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/logger"
	"github.com/ClassWYZ/floodlight/pkg/models"
	"github.com/ClassWYZ/floodlight/pkg/storage"
)

// DefaultStorageUpdateInterval is the minimum gap between two persisted
// last-seen updates for the same device.
const DefaultStorageUpdateInterval = 30 * time.Second

const syncQueueDepth = 256

// Synchronizer mirrors registry state into the row store. Writes are
// asynchronous and best effort: the in-memory registry stays
// authoritative, and a slow or failing store degrades persistence
// freshness, never packet processing.
type Synchronizer struct {
	store       storage.Store
	minInterval time.Duration
	log         logger.Logger

	queue chan syncOp

	mu        sync.Mutex
	lastWrite map[uint64]time.Time

	stopOnce sync.Once
	done     chan struct{}
	drained  chan struct{}
}

type syncOp struct {
	row    *models.DeviceRow
	delete uint64
}

// NewSynchronizer creates a synchronizer over store. minInterval <= 0
// selects the default.
func NewSynchronizer(store storage.Store, minInterval time.Duration, log logger.Logger) *Synchronizer {
	if minInterval <= 0 {
		minInterval = DefaultStorageUpdateInterval
	}
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &Synchronizer{
		store:       store,
		minInterval: minInterval,
		log:         log,
		queue:       make(chan syncOp, syncQueueDepth),
		lastWrite:   make(map[uint64]time.Time),
		done:        make(chan struct{}),
		drained:     make(chan struct{}),
	}
}

// Start launches the writer goroutine.
func (s *Synchronizer) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop shuts the writer down after draining queued writes.
func (s *Synchronizer) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.drained
}

func (s *Synchronizer) run(ctx context.Context) {
	defer close(s.drained)

	for {
		select {
		case op := <-s.queue:
			s.apply(ctx, op)
		case <-s.done:
			for {
				select {
				case op := <-s.queue:
					s.apply(ctx, op)
				default:
					return
				}
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Synchronizer) apply(ctx context.Context, op syncOp) {
	if op.row != nil {
		if err := s.store.UpsertDevice(ctx, op.row); err != nil {
			// The in-memory registry is authoritative; a failed mirror
			// write is logged and dropped.
			s.log.Error().
				Err(err).
				Uint64("device_key", op.row.DeviceKey).
				Msg("Failed to persist device row")
		}
		return
	}

	if err := s.store.DeleteDevice(ctx, op.delete); err != nil {
		s.log.Error().
			Err(err).
			Uint64("device_key", op.delete).
			Msg("Failed to delete device row")
	}
}

// DeviceDirty records that a device snapshot changed and persists it if
// its last-seen advanced past the minimum update interval. Never blocks:
// when the queue is full the write is dropped and the interval gate is
// rolled back so a later observation retries.
func (s *Synchronizer) DeviceDirty(dev *Device) {
	lastSeen := dev.LastSeen()

	s.mu.Lock()
	prev, seen := s.lastWrite[dev.Key()]
	if seen && lastSeen.Sub(prev) < s.minInterval {
		s.mu.Unlock()
		return
	}
	s.lastWrite[dev.Key()] = lastSeen
	s.mu.Unlock()

	select {
	case s.queue <- syncOp{row: dev.Row()}:
	default:
		s.mu.Lock()
		if seen {
			s.lastWrite[dev.Key()] = prev
		} else {
			delete(s.lastWrite, dev.Key())
		}
		s.mu.Unlock()

		s.log.Warn().
			Uint64("device_key", dev.Key()).
			Msg("Storage queue full, dropping device write")
	}
}

// DeleteDevice requests removal of a persisted row, best effort.
func (s *Synchronizer) DeleteDevice(_ context.Context, deviceKey uint64) {
	s.mu.Lock()
	delete(s.lastWrite, deviceKey)
	s.mu.Unlock()

	select {
	case s.queue <- syncOp{delete: deviceKey}:
	default:
		s.log.Warn().
			Uint64("device_key", deviceKey).
			Msg("Storage queue full, dropping device delete")
	}
}

// LoadDevices reads all persisted device rows. Called once at startup;
// failure is fatal there, since learning previously known hosts again
// would mint duplicate device keys.
func (s *Synchronizer) LoadDevices(ctx context.Context) ([]*models.DeviceRow, error) {
	rows, err := s.store.ListDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device rows: %w", err)
	}

	return rows, nil
}

// LoadPortChannels reads the port-channel configuration table.
func (s *Synchronizer) LoadPortChannels(ctx context.Context) ([]*models.PortChannelRow, error) {
	rows, err := s.store.ListPortChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load port-channel rows: %w", err)
	}

	return rows, nil
}
