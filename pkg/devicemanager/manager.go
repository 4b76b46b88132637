package devicemanager

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/classifier"
	"github.com/ClassWYZ/floodlight/pkg/logger"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

const (
	// DefaultFlapCooldown is how long a blocked port stays ignored for
	// move detection after supersession.
	DefaultFlapCooldown = 5 * time.Minute

	// DefaultDeviceExpiry is the no-observation window after which a
	// device becomes eligible for aging.
	DefaultDeviceExpiry = 1 * time.Hour
)

// Config carries the tunable parameters of the device manager.
type Config struct {
	FlapCooldown time.Duration
	DeviceExpiry time.Duration
}

func (c *Config) withDefaults() Config {
	out := Config{
		FlapCooldown: DefaultFlapCooldown,
		DeviceExpiry: DefaultDeviceExpiry,
	}

	if c == nil {
		return out
	}
	if c.FlapCooldown > 0 {
		out.FlapCooldown = c.FlapCooldown
	}
	if c.DeviceExpiry > 0 {
		out.DeviceExpiry = c.DeviceExpiry
	}

	return out
}

type macVlanKey struct {
	mac  uint64
	vlan int32 // -1 for untagged
}

// DeviceManager is the authoritative in-memory device registry. Lookups
// and merges for the same identity are serialized by a per-identity lock;
// the registry-wide lock only covers index reads and pointer swaps, so
// unrelated devices merge concurrently.
type DeviceManager struct {
	log      logger.Logger
	topology Topology
	sync     *Synchronizer
	cfg      Config

	classifierMu sync.RWMutex
	classifier   classifier.EntityClassifier

	mu               sync.RWMutex
	devices          map[uint64]*Device
	byIdentity       map[string]*Device
	byMAC            map[uint64]map[uint64]*Device
	byMACVlan        map[macVlanKey]map[uint64]*Device
	byIPv4           map[uint32]map[uint64]*Device
	deviceKeyCounter uint64

	locksMu       sync.Mutex
	identityLocks map[string]*identityLock

	pcMu         sync.RWMutex
	portChannels map[models.SwitchPort]string
}

type identityLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a device manager. topology and syncer may be nil; a nil
// topology treats every port as a potential attachment point, a nil
// syncer disables persistence.
func New(cfg *Config, topology Topology, syncer *Synchronizer, log logger.Logger) *DeviceManager {
	if log == nil {
		log = logger.NewTestLogger()
	}

	return &DeviceManager{
		log:           log,
		topology:      topology,
		sync:          syncer,
		cfg:           cfg.withDefaults(),
		classifier:    classifier.NewDefault(),
		devices:       make(map[uint64]*Device),
		byIdentity:    make(map[string]*Device),
		byMAC:         make(map[uint64]map[uint64]*Device),
		byMACVlan:     make(map[macVlanKey]map[uint64]*Device),
		byIPv4:        make(map[uint32]map[uint64]*Device),
		identityLocks: make(map[string]*identityLock),
		portChannels:  make(map[models.SwitchPort]string),
	}
}

// SetEntityClassifier swaps the active classifier. In-flight merges keep
// the classifier they started with; the swap is visible to the next
// observation.
func (m *DeviceManager) SetEntityClassifier(c classifier.EntityClassifier) {
	if c == nil {
		c = classifier.NewDefault()
	}

	m.classifierMu.Lock()
	m.classifier = c
	m.classifierMu.Unlock()
}

// classifyEntity resolves the entity's classes and the active key schema
// in one consistent read. An empty class set is a configuration fault and
// falls back to the default class.
func (m *DeviceManager) classifyEntity(entity *models.Entity) ([]classifier.EntityClass, classifier.FieldSet) {
	m.classifierMu.RLock()
	cls := m.classifier
	m.classifierMu.RUnlock()

	classes := cls.Classify(entity)
	if len(classes) == 0 {
		m.log.Warn().
			Str("mac", entity.MACString()).
			Msg("Classifier returned no classes, falling back to default class")

		classes = []classifier.EntityClass{classifier.DefaultClass}
	}

	return classes, cls.KeyFields()
}

// LearnDeviceByEntity implements Service.
func (m *DeviceManager) LearnDeviceByEntity(ctx context.Context, entity *models.Entity) (*Device, error) {
	if entity == nil {
		return nil, errNilEntity
	}
	if entity.MAC == 0 {
		return nil, ErrMissingMAC
	}

	classes, fields := m.classifyEntity(entity)
	idKey := identityKey(entity, classes, fields)

	unlock := m.lockIdentity(idKey)
	defer unlock()

	for {
		m.mu.RLock()
		dev := m.byIdentity[idKey]
		m.mu.RUnlock()

		if dev == nil {
			break
		}

		if known := dev.findEntity(entity); known != nil && !known.LastSeen.Before(entity.LastSeen) {
			// Identical observation. Nothing to record.
			return dev, nil
		}

		updated := m.mergeEntity(ctx, dev, entity, idKey)

		m.mu.Lock()
		if m.devices[dev.key] != dev {
			// A device can own several identity keys, so the identity
			// lock alone does not serialize all of its merges. If another
			// key's merge swapped in a newer snapshot since the lookup,
			// installing ours would drop that merge; redo against the
			// current snapshot instead.
			m.mu.Unlock()
			continue
		}
		err := m.installLocked(updated)
		m.mu.Unlock()

		if err != nil {
			return nil, err
		}

		m.markDirty(updated)

		return updated, nil
	}

	created := m.createDevice(ctx, entity, classes, idKey)

	m.mu.Lock()
	// The identity lock keeps competing learners for this identity out,
	// so allocating the key and installing the indices here is atomic
	// with the lookup above.
	m.deviceKeyCounter++
	created.key = m.deviceKeyCounter
	err := m.installLocked(created)
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}

	m.log.Debug().
		Uint64("device_key", created.key).
		Str("mac", created.MACAddressString()).
		Msg("Learned new device")

	m.markDirty(created)

	return created, nil
}

// FindDeviceByEntity implements Service.
func (m *DeviceManager) FindDeviceByEntity(entity *models.Entity) (*Device, bool) {
	if entity == nil {
		return nil, false
	}

	classes, fields := m.classifyEntity(entity)
	idKey := identityKey(entity, classes, fields)

	m.mu.RLock()
	dev := m.byIdentity[idKey]
	m.mu.RUnlock()

	return dev, dev != nil
}

// GetDevice implements Service.
func (m *DeviceManager) GetDevice(deviceKey uint64) (*Device, bool) {
	m.mu.RLock()
	dev, ok := m.devices[deviceKey]
	m.mu.RUnlock()

	return dev, ok
}

// FindDevicesByMAC implements Service.
func (m *DeviceManager) FindDevicesByMAC(mac uint64) []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedBucket(m.byMAC[mac])
}

// FindDevicesByMACVlan implements Service.
func (m *DeviceManager) FindDevicesByMACVlan(mac uint64, vlan *uint16) []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedBucket(m.byMACVlan[macVlanKey{mac: mac, vlan: vlanIndexKey(vlan)}])
}

// FindDevicesByIPv4 implements Service.
func (m *DeviceManager) FindDevicesByIPv4(ip uint32) []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return sortedBucket(m.byIPv4[ip])
}

// AllDevices implements Service.
func (m *DeviceManager) AllDevices() []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Device, 0, len(m.devices))
	for _, dev := range m.devices {
		out = append(out, dev)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })

	return out
}

// ExpiredDevices returns devices whose last observation is older than the
// configured expiry window as of now. The aging sweep that acts on them
// runs outside the registry.
func (m *DeviceManager) ExpiredDevices(now time.Time) []*Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Device
	for _, dev := range m.devices {
		if dev.ExpiredSince(now, m.cfg.DeviceExpiry) {
			out = append(out, dev)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })

	return out
}

// RemoveDevice drops an aged-out device from all indices and requests
// deletion of its persisted row.
func (m *DeviceManager) RemoveDevice(ctx context.Context, deviceKey uint64) bool {
	m.mu.Lock()

	dev, ok := m.devices[deviceKey]
	if !ok {
		m.mu.Unlock()
		return false
	}

	delete(m.devices, deviceKey)

	for _, k := range dev.identityKeys {
		if cur, ok := m.byIdentity[k]; ok && cur.key == deviceKey {
			delete(m.byIdentity, k)
		}
	}

	for _, e := range dev.entities {
		removeFromBucket(m.byMAC, e.MAC, deviceKey)
		removeFromBucket(m.byMACVlan, macVlanKey{mac: e.MAC, vlan: vlanIndexKey(e.VLAN)}, deviceKey)
		if e.IPv4 != nil {
			removeFromBucket(m.byIPv4, *e.IPv4, deviceKey)
		}
	}

	m.mu.Unlock()

	if m.sync != nil {
		m.sync.DeleteDevice(ctx, deviceKey)
	}

	m.log.Info().Uint64("device_key", deviceKey).Msg("Removed aged-out device")

	return true
}

// mergeEntity produces the successor snapshot of dev with entity merged
// in. Attachment state is recomputed from the observation.
func (m *DeviceManager) mergeEntity(ctx context.Context, dev *Device, entity *models.Entity, idKey string) *Device {
	nd := dev.clone()

	if known := nd.findEntity(entity); known != nil {
		// Same field tuple seen again, later: refresh its timestamp on a
		// copy so the prior snapshot stays frozen.
		for i, e := range nd.entities {
			if e == known {
				refreshed := *e
				refreshed.LastSeen = entity.LastSeen
				nd.entities[i] = &refreshed
				break
			}
		}
	} else {
		nd.entities = append(nd.entities, entity)
		nd.identityKeys = appendUnique(nd.identityKeys, idKey)
	}

	if entity.LastSeen.After(nd.lastSeen) {
		nd.lastSeen = entity.LastSeen
	}

	m.updateAttachment(ctx, nd, entity)

	return nd
}

// createDevice builds a device for a previously unknown identity. The
// device key is assigned by the caller inside the registry lock.
func (m *DeviceManager) createDevice(ctx context.Context, entity *models.Entity, classes []classifier.EntityClass, idKey string) *Device {
	dev := &Device{
		entities:     []*models.Entity{entity},
		classes:      classes,
		identityKeys: []string{idKey},
		lastSeen:     entity.LastSeen,
	}

	m.updateAttachment(ctx, dev, entity)

	return dev
}

// installLocked swaps the device snapshot into every index. Callers hold
// the registry write lock. A conflicting identity entry pointing at a
// different device key is an invariant violation, never silently merged.
func (m *DeviceManager) installLocked(dev *Device) error {
	for _, k := range dev.identityKeys {
		if cur, ok := m.byIdentity[k]; ok && cur.key != dev.key {
			return fmt.Errorf("%w: identity %q owned by device %d and %d",
				ErrAmbiguousIdentity, k, cur.key, dev.key)
		}
	}

	m.devices[dev.key] = dev

	for _, k := range dev.identityKeys {
		m.byIdentity[k] = dev
	}

	for _, e := range dev.entities {
		addToBucket(m.byMAC, e.MAC, dev)
		addToBucket(m.byMACVlan, macVlanKey{mac: e.MAC, vlan: vlanIndexKey(e.VLAN)}, dev)
		if e.IPv4 != nil {
			addToBucket(m.byIPv4, *e.IPv4, dev)
		}
	}

	return nil
}

func (m *DeviceManager) markDirty(dev *Device) {
	if m.sync == nil {
		return
	}

	m.sync.DeviceDirty(dev)
}

// isInternal consults topology and fails open on errors.
func (m *DeviceManager) isInternal(ctx context.Context, switchDPID uint64, port int) bool {
	if m.topology == nil {
		return false
	}

	internal, err := m.topology.IsInternal(ctx, switchDPID, port)
	if err != nil {
		m.log.Warn().
			Err(err).
			Uint64("switch_dpid", switchDPID).
			Int("port", port).
			Msg("Topology query failed, treating port as not internal")

		return false
	}

	return internal
}

// lockIdentity serializes learners of one identity. The lock entry is
// reference counted so the map does not grow with identity churn.
func (m *DeviceManager) lockIdentity(idKey string) func() {
	m.locksMu.Lock()
	l, ok := m.identityLocks[idKey]
	if !ok {
		l = &identityLock{}
		m.identityLocks[idKey] = l
	}
	l.refs++
	m.locksMu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		m.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.identityLocks, idKey)
		}
		m.locksMu.Unlock()
	}
}

// identityKey projects an entity onto the active key schema and class
// set. Entities agreeing on every schema field and class land on the same
// key; an absent VLAN is the distinct "untagged" value, never a wildcard.
func identityKey(e *models.Entity, classes []classifier.EntityClass, fields classifier.FieldSet) string {
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(strings.Join(names, "+"))

	if fields.Has(classifier.FieldMAC) {
		fmt.Fprintf(&b, "|mac=%d", e.MAC)
	}
	if fields.Has(classifier.FieldVLAN) {
		if e.VLAN == nil {
			b.WriteString("|vlan=untagged")
		} else {
			fmt.Fprintf(&b, "|vlan=%d", *e.VLAN)
		}
	}
	if fields.Has(classifier.FieldIPv4) {
		if e.IPv4 == nil {
			b.WriteString("|ipv4=unknown")
		} else {
			fmt.Fprintf(&b, "|ipv4=%d", *e.IPv4)
		}
	}
	if fields.Has(classifier.FieldSwitch) {
		fmt.Fprintf(&b, "|switch=%d", e.SwitchDPID)
	}
	if fields.Has(classifier.FieldPort) {
		fmt.Fprintf(&b, "|port=%d", e.SwitchPort)
	}

	return b.String()
}

func vlanIndexKey(vlan *uint16) int32 {
	if vlan == nil {
		return -1
	}
	return int32(*vlan)
}

func addToBucket[K comparable](index map[K]map[uint64]*Device, key K, dev *Device) {
	bucket := index[key]
	if bucket == nil {
		bucket = make(map[uint64]*Device)
		index[key] = bucket
	}
	bucket[dev.key] = dev
}

func removeFromBucket[K comparable](index map[K]map[uint64]*Device, key K, deviceKey uint64) {
	if bucket, ok := index[key]; ok {
		delete(bucket, deviceKey)
		if len(bucket) == 0 {
			delete(index, key)
		}
	}
}

func sortedBucket(bucket map[uint64]*Device) []*Device {
	if len(bucket) == 0 {
		return nil
	}

	out := make([]*Device, 0, len(bucket))
	for _, dev := range bucket {
		out = append(out, dev)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })

	return out
}

func appendUnique(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}
