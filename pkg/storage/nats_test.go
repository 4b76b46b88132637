package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceRowKey(t *testing.T) {
	assert.Equal(t, "0", deviceRowKey(0))
	assert.Equal(t, "42", deviceRowKey(42))
}

func TestEncodePortChannelKey(t *testing.T) {
	// '|' is not a valid JetStream key character.
	assert.Equal(t, "0000000000000001_3", encodePortChannelKey("0000000000000001|3"))
	assert.Equal(t, "po1-1", encodePortChannelKey("po1-1"))
}
