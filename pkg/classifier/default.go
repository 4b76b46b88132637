package classifier

import (
	"github.com/ClassWYZ/floodlight/pkg/models"
)

// StaticClass is an EntityClass with a fixed name and key-field set.
type StaticClass struct {
	name   string
	fields FieldSet
}

// NewStaticClass creates a named class over the given key fields.
func NewStaticClass(name string, fields FieldSet) *StaticClass {
	return &StaticClass{name: name, fields: fields}
}

func (c *StaticClass) Name() string { return c.name }

func (c *StaticClass) KeyFields() FieldSet { return c.fields }

// DefaultClassName is the class assigned when no deployment-specific
// classifier is configured, and the fallback when a classifier returns an
// empty class set.
const DefaultClassName = "default"

// DefaultKeyFields is the key schema of the default classifier: hosts are
// identified by MAC within a VLAN, so the same NIC seen on two switches
// is one device with two attachment points.
var DefaultKeyFields = NewFieldSet(FieldMAC, FieldVLAN)

// DefaultClass is the single global class used by the default classifier.
var DefaultClass EntityClass = NewStaticClass(DefaultClassName, DefaultKeyFields)

// Default is the default entity classifier: every entity lands in one
// global class keyed by MAC and VLAN.
type Default struct{}

// NewDefault creates the default classifier.
func NewDefault() *Default {
	return &Default{}
}

func (*Default) Classify(_ *models.Entity) []EntityClass {
	return []EntityClass{DefaultClass}
}

func (*Default) KeyFields() FieldSet {
	return DefaultKeyFields
}
