package devicemanager

import (
	"sort"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/classifier"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

// Device is a resolved host: the maximal set of entities that are
// pairwise key-equal under the active schema and share a class set.
//
// Devices are immutable snapshots. Merging an entity produces a new
// snapshot that replaces the old one in the registry, so a device handed
// to a caller never changes underneath it; re-learning an entity the
// device already holds returns the identical pointer.
type Device struct {
	key            uint64
	entities       []*models.Entity
	classes        []classifier.EntityClass
	attachments    []*models.AttachmentPoint
	oldAttachments []*models.AttachmentPoint
	identityKeys   []string
	lastSeen       time.Time
}

// Key returns the device's unique, monotonically assigned key.
func (d *Device) Key() uint64 { return d.key }

// MACAddress returns the MAC of the device's first learned entity.
func (d *Device) MACAddress() uint64 {
	if len(d.entities) == 0 {
		return 0
	}
	return d.entities[0].MAC
}

// MACAddressString renders MACAddress in colon-separated form.
func (d *Device) MACAddressString() string {
	return models.FormatMAC(d.MACAddress())
}

// MACAddresses returns the distinct MACs over all owned entities,
// ascending.
func (d *Device) MACAddresses() []uint64 {
	seen := make(map[uint64]struct{}, len(d.entities))
	out := make([]uint64, 0, len(d.entities))

	for _, e := range d.entities {
		if _, ok := seen[e.MAC]; ok {
			continue
		}
		seen[e.MAC] = struct{}{}
		out = append(out, e.MAC)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IPv4Addresses returns the distinct IPv4 addresses over all owned
// entities, ascending. Entities without a known address contribute
// nothing.
func (d *Device) IPv4Addresses() []uint32 {
	seen := make(map[uint32]struct{}, len(d.entities))
	out := make([]uint32, 0, len(d.entities))

	for _, e := range d.entities {
		if e.IPv4 == nil {
			continue
		}
		if _, ok := seen[*e.IPv4]; ok {
			continue
		}
		seen[*e.IPv4] = struct{}{}
		out = append(out, *e.IPv4)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// VlanIDs returns the distinct tagged VLANs over all owned entities,
// ascending. Untagged observations contribute nothing.
func (d *Device) VlanIDs() []uint16 {
	seen := make(map[uint16]struct{}, len(d.entities))
	out := make([]uint16, 0, len(d.entities))

	for _, e := range d.entities {
		if e.VLAN == nil {
			continue
		}
		if _, ok := seen[*e.VLAN]; ok {
			continue
		}
		seen[*e.VLAN] = struct{}{}
		out = append(out, *e.VLAN)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AttachmentPoints returns the current attachment points as switch/port
// pairs, ordered by switch then port.
func (d *Device) AttachmentPoints() []models.SwitchPort {
	out := make([]models.SwitchPort, 0, len(d.attachments))
	for _, ap := range d.attachments {
		out = append(out, ap.SwitchPort)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].SwitchDPID != out[j].SwitchDPID {
			return out[i].SwitchDPID < out[j].SwitchDPID
		}
		return out[i].Port < out[j].Port
	})

	return out
}

// CurrentAttachments returns copies of the current attachment points.
func (d *Device) CurrentAttachments() []models.AttachmentPoint {
	return copyAttachments(d.attachments)
}

// OldAttachments returns copies of the superseded attachment points kept
// for flap and audit history.
func (d *Device) OldAttachments() []models.AttachmentPoint {
	return copyAttachments(d.oldAttachments)
}

// EntityClasses returns the class set computed when the device was
// created.
func (d *Device) EntityClasses() []classifier.EntityClass {
	out := make([]classifier.EntityClass, len(d.classes))
	copy(out, d.classes)
	return out
}

// Entities returns copies of the owned entities in arrival order.
func (d *Device) Entities() []models.Entity {
	out := make([]models.Entity, 0, len(d.entities))
	for _, e := range d.entities {
		out = append(out, *e)
	}
	return out
}

// LastSeen is the latest observation timestamp over all owned entities.
func (d *Device) LastSeen() time.Time { return d.lastSeen }

// ExpiredSince reports whether the device has gone unobserved for longer
// than window as of now. The aging sweep itself runs outside the
// registry; this is its trigger condition.
func (d *Device) ExpiredSince(now time.Time, window time.Duration) bool {
	if window <= 0 {
		return false
	}
	return now.Sub(d.lastSeen) > window
}

// Row projects the device into its persisted form.
func (d *Device) Row() *models.DeviceRow {
	classNames := make([]string, 0, len(d.classes))
	for _, c := range d.classes {
		classNames = append(classNames, c.Name())
	}

	return &models.DeviceRow{
		DeviceKey:           d.key,
		MAC:                 d.MACAddressString(),
		LastSeen:            d.lastSeen,
		EntityClasses:       classNames,
		Entities:            d.Entities(),
		AttachmentPoints:    d.CurrentAttachments(),
		OldAttachmentPoints: d.OldAttachments(),
	}
}

// findEntity returns the owned entity with the same identity field tuple,
// or nil.
func (d *Device) findEntity(entity *models.Entity) *models.Entity {
	for _, e := range d.entities {
		if e.FieldsEqual(entity) {
			return e
		}
	}
	return nil
}

// clone makes a snapshot the merge path can mutate freely. Entities are
// shared (they are immutable once learned); attachment points are copied
// because the tracker rewrites them.
func (d *Device) clone() *Device {
	nd := &Device{
		key:      d.key,
		lastSeen: d.lastSeen,
	}

	nd.entities = make([]*models.Entity, len(d.entities))
	copy(nd.entities, d.entities)

	nd.classes = make([]classifier.EntityClass, len(d.classes))
	copy(nd.classes, d.classes)

	nd.identityKeys = make([]string, len(d.identityKeys))
	copy(nd.identityKeys, d.identityKeys)

	nd.attachments = cloneAttachmentPtrs(d.attachments)
	nd.oldAttachments = cloneAttachmentPtrs(d.oldAttachments)

	return nd
}

func cloneAttachmentPtrs(aps []*models.AttachmentPoint) []*models.AttachmentPoint {
	out := make([]*models.AttachmentPoint, 0, len(aps))
	for _, ap := range aps {
		clone := *ap
		out = append(out, &clone)
	}
	return out
}

func copyAttachments(aps []*models.AttachmentPoint) []models.AttachmentPoint {
	out := make([]models.AttachmentPoint, 0, len(aps))
	for _, ap := range aps {
		out = append(out, *ap)
	}
	return out
}
