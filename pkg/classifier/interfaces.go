// Package classifier partitions the entity identity space. An entity
// classifier assigns every observed entity to one or more entity classes
// and declares which identity fields participate in device equality.
package classifier

import (
	"strings"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// Field names one identity field of an entity.
type Field uint8

const (
	FieldMAC Field = iota
	FieldVLAN
	FieldIPv4
	FieldSwitch
	FieldPort
)

var fieldNames = map[Field]string{
	FieldMAC:    "mac",
	FieldVLAN:   "vlan",
	FieldIPv4:   "ipv4",
	FieldSwitch: "switch",
	FieldPort:   "port",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// FieldSet is a set of identity fields, used as the key schema for
// entity equality and device merging.
type FieldSet uint8

// NewFieldSet builds a FieldSet from the given fields.
func NewFieldSet(fields ...Field) FieldSet {
	var s FieldSet
	for _, f := range fields {
		s |= 1 << f
	}
	return s
}

// Has reports whether f is part of the set.
func (s FieldSet) Has(f Field) bool {
	return s&(1<<f) != 0
}

func (s FieldSet) String() string {
	parts := make([]string, 0, 5)
	for f := FieldMAC; f <= FieldPort; f++ {
		if s.Has(f) {
			parts = append(parts, f.String())
		}
	}
	return strings.Join(parts, ",")
}

// EntityClass labels one partition of the identity space. Entities only
// merge into the same device when their class sets match.
type EntityClass interface {
	// Name identifies the class; classes compare equal by name.
	Name() string
	// KeyFields is the set of identity fields this class cares about.
	KeyFields() FieldSet
}

// EntityClassifier maps an entity to its classes and supplies the active
// key-field schema. Implementations must be pure functions of their
// configuration and the entity; the device manager may call them from
// many goroutines at once.
type EntityClassifier interface {
	// Classify returns the classes the entity belongs to. An empty
	// result is treated as a configuration fault by callers, which fall
	// back to the default class.
	Classify(entity *models.Entity) []EntityClass
	// KeyFields returns the identity fields used for equality and merge.
	KeyFields() FieldSet
}
