package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationUnmarshal(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"30s"`), &d))
	assert.Equal(t, 30*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`5000000000`), &d))
	assert.Equal(t, 5*time.Second, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDurationMarshal(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestEntityFieldsEqual(t *testing.T) {
	vlan5 := uint16(5)
	vlan6 := uint16(6)
	ip1 := uint32(1)

	base := &Entity{MAC: 1, VLAN: &vlan5, IPv4: &ip1, SwitchDPID: 1, SwitchPort: 1, LastSeen: time.Now()}

	// Timestamps never participate in equality.
	same := *base
	same.LastSeen = base.LastSeen.Add(time.Hour)
	assert.True(t, base.FieldsEqual(&same))

	diffVlan := *base
	diffVlan.VLAN = &vlan6
	assert.False(t, base.FieldsEqual(&diffVlan))

	untagged := *base
	untagged.VLAN = nil
	assert.False(t, base.FieldsEqual(&untagged))

	noIP := *base
	noIP.IPv4 = nil
	assert.False(t, base.FieldsEqual(&noIP))

	diffPort := *base
	diffPort.SwitchPort = 2
	assert.False(t, base.FieldsEqual(&diffPort))

	assert.False(t, base.FieldsEqual(nil))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "00:44:33:22:11:00", FormatMAC(0x004433221100))
	assert.Equal(t, "192.168.1.1", FormatIPv4(0xc0a80101))
	assert.Equal(t, "000000000000000a/3", SwitchPort{SwitchDPID: 10, Port: 3}.String())
}

func TestPortChannelRowID(t *testing.T) {
	row := &PortChannelRow{SwitchDPID: 1, Port: 3, Channel: "po1"}
	assert.Equal(t, "0000000000000001|3", row.RowID())
}
