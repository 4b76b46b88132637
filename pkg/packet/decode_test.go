package packet

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

func ethHeader(srcMAC uint64, etherType uint16) []byte {
	b := make([]byte, 14)
	// destination stays broadcast; only the source matters here
	for i := 0; i < 6; i++ {
		b[i] = 0xff
	}
	for i := 0; i < 6; i++ {
		b[6+i] = byte(srcMAC >> (40 - 8*i))
	}
	binary.BigEndian.PutUint16(b[12:14], etherType)

	return b
}

func vlanTag(vid uint16, etherType uint16) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint16(b[0:2], vid)
	binary.BigEndian.PutUint16(b[2:4], etherType)

	return b
}

func arpPayload(senderIP uint32) []byte {
	b := make([]byte, 28)
	binary.BigEndian.PutUint16(b[0:2], 1)      // ethernet
	binary.BigEndian.PutUint16(b[2:4], 0x0800) // ipv4
	b[4] = 6
	b[5] = 4
	binary.BigEndian.PutUint16(b[6:8], 2) // reply
	binary.BigEndian.PutUint32(b[14:18], senderIP)

	return b
}

func ipv4Payload(srcIP uint32) []byte {
	b := make([]byte, 20)
	b[0] = 0x45
	binary.BigEndian.PutUint32(b[12:16], srcIP)

	return b
}

func TestDecodeARP(t *testing.T) {
	frame := append(ethHeader(0x004433221100, 0x0806), arpPayload(0xc0a80101)...)

	f, err := Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x004433221100), f.SrcMAC)
	assert.Nil(t, f.VLAN)
	require.NotNil(t, f.IPv4)
	assert.Equal(t, uint32(0xc0a80101), *f.IPv4)
}

func TestDecodeVLANTaggedARP(t *testing.T) {
	frame := ethHeader(0x004433221100, 0x8100)
	frame = append(frame, vlanTag(5, 0x0806)...)
	frame = append(frame, arpPayload(0xc0a80101)...)

	f, err := Decode(frame)
	require.NoError(t, err)
	require.NotNil(t, f.VLAN)
	assert.Equal(t, uint16(5), *f.VLAN)
	require.NotNil(t, f.IPv4)
	assert.Equal(t, uint32(0xc0a80101), *f.IPv4)
}

func TestDecodeIPv4(t *testing.T) {
	frame := append(ethHeader(0x0a0b0c0d0e0f, 0x0800), ipv4Payload(0x0a000001)...)

	f, err := Decode(frame)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0a0b0c0d0e0f), f.SrcMAC)
	require.NotNil(t, f.IPv4)
	assert.Equal(t, uint32(0x0a000001), *f.IPv4)
}

func TestDecodeUnknownPayload(t *testing.T) {
	// LLDP-ish ethertype: MAC still usable, no address extracted.
	f, err := Decode(ethHeader(0x004433221100, 0x88cc))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x004433221100), f.SrcMAC)
	assert.Nil(t, f.VLAN)
	assert.Nil(t, f.IPv4)
}

func TestDecodeRejectsBadFrames(t *testing.T) {
	_, err := Decode(ethHeader(0x004433221100, 0x0806)[:10])
	assert.ErrorIs(t, err, ErrTruncatedFrame)

	_, err = Decode(ethHeader(0x004433221100, 0x8100)) // tag announced, absent
	assert.ErrorIs(t, err, ErrTruncatedFrame)

	_, err = Decode(ethHeader(0, 0x0806))
	assert.ErrorIs(t, err, ErrMissingSourceMAC)
}

func TestNormalize(t *testing.T) {
	frame := ethHeader(0x004433221100, 0x8100)
	frame = append(frame, vlanTag(5, 0x0806)...)
	frame = append(frame, arpPayload(0xc0a80101)...)

	ts := time.Now().Add(-time.Minute)

	e, err := Normalize(&models.PacketIn{
		SwitchDPID: 7,
		Port:       3,
		Data:       frame,
		Timestamp:  ts,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(0x004433221100), e.MAC)
	assert.Equal(t, "00:44:33:22:11:00", e.MACString())
	require.NotNil(t, e.VLAN)
	assert.Equal(t, uint16(5), *e.VLAN)
	require.NotNil(t, e.IPv4)
	assert.Equal(t, "192.168.1.1", models.FormatIPv4(*e.IPv4))
	assert.Equal(t, uint64(7), e.SwitchDPID)
	assert.Equal(t, 3, e.SwitchPort)
	assert.True(t, e.LastSeen.Equal(ts))
}

func TestNormalizeDefaultsTimestamp(t *testing.T) {
	frame := append(ethHeader(0x004433221100, 0x0806), arpPayload(0xc0a80101)...)

	before := time.Now()
	e, err := Normalize(&models.PacketIn{SwitchDPID: 1, Port: 1, Data: frame})
	require.NoError(t, err)
	assert.False(t, e.LastSeen.Before(before))
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrEmptyObservation)

	_, err = Normalize(&models.PacketIn{SwitchDPID: 1, Port: 1})
	assert.ErrorIs(t, err, ErrEmptyObservation)
}
