package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

func TestFieldSet(t *testing.T) {
	s := NewFieldSet(FieldMAC, FieldSwitch)

	assert.True(t, s.Has(FieldMAC))
	assert.True(t, s.Has(FieldSwitch))
	assert.False(t, s.Has(FieldVLAN))
	assert.False(t, s.Has(FieldIPv4))
	assert.False(t, s.Has(FieldPort))

	assert.Equal(t, "mac,switch", s.String())
	assert.Equal(t, "", NewFieldSet().String())
}

func TestDefaultClassifier(t *testing.T) {
	c := NewDefault()

	assert.Equal(t, DefaultKeyFields, c.KeyFields())
	assert.True(t, c.KeyFields().Has(FieldMAC))
	assert.True(t, c.KeyFields().Has(FieldVLAN))
	assert.False(t, c.KeyFields().Has(FieldIPv4))

	classes := c.Classify(&models.Entity{MAC: 1})
	require.Len(t, classes, 1)
	assert.Equal(t, DefaultClassName, classes[0].Name())
	assert.Equal(t, DefaultKeyFields, classes[0].KeyFields())
}

func TestStaticClass(t *testing.T) {
	c := NewStaticClass("guests", NewFieldSet(FieldMAC))

	assert.Equal(t, "guests", c.Name())
	assert.True(t, c.KeyFields().Has(FieldMAC))
	assert.False(t, c.KeyFields().Has(FieldVLAN))
}
