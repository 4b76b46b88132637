// Package packet extracts the identity-relevant fields of an observed
// frame: source MAC, 802.1Q VLAN tag, and a sender IPv4 address when the
// payload is ARP or IPv4. It does not keep payloads and does not decode
// anything beyond those headers.
package packet

import (
	"encoding/binary"
	"errors"
)

var (
	ErrTruncatedFrame   = errors.New("truncated ethernet frame")
	ErrMissingSourceMAC = errors.New("frame has no usable source MAC")
)

const (
	etherTypeIPv4 = 0x0800
	etherTypeARP  = 0x0806
	etherTypeVLAN = 0x8100

	ethHeaderLen  = 14
	vlanTagLen    = 4
	ipv4MinHeader = 20
	arpIPv4Len    = 28
)

// Fields holds what Decode could extract from a frame.
type Fields struct {
	SrcMAC uint64
	VLAN   *uint16
	IPv4   *uint32
}

// Decode walks the Ethernet header, an optional single 802.1Q tag, and an
// ARP or IPv4 payload. Unknown payloads are not an error; they simply
// yield no IPv4 address.
func Decode(data []byte) (*Fields, error) {
	if len(data) < ethHeaderLen {
		return nil, ErrTruncatedFrame
	}

	srcMAC := macToUint64(data[6:12])
	if srcMAC == 0 {
		return nil, ErrMissingSourceMAC
	}

	f := &Fields{SrcMAC: srcMAC}

	etherType := binary.BigEndian.Uint16(data[12:14])
	payload := data[ethHeaderLen:]

	if etherType == etherTypeVLAN {
		if len(data) < ethHeaderLen+vlanTagLen {
			return nil, ErrTruncatedFrame
		}

		vid := binary.BigEndian.Uint16(data[14:16]) & 0x0fff
		f.VLAN = &vid
		etherType = binary.BigEndian.Uint16(data[16:18])
		payload = data[ethHeaderLen+vlanTagLen:]
	}

	switch etherType {
	case etherTypeARP:
		if ip, ok := arpSenderIP(payload); ok {
			f.IPv4 = &ip
		}
	case etherTypeIPv4:
		if ip, ok := ipv4SourceIP(payload); ok {
			f.IPv4 = &ip
		}
	}

	return f, nil
}

// arpSenderIP pulls the sender protocol address out of an Ethernet/IPv4
// ARP payload.
func arpSenderIP(p []byte) (uint32, bool) {
	if len(p) < arpIPv4Len {
		return 0, false
	}

	hwType := binary.BigEndian.Uint16(p[0:2])
	protoType := binary.BigEndian.Uint16(p[2:4])
	hwLen := p[4]
	protoLen := p[5]

	if hwType != 1 || protoType != etherTypeIPv4 || hwLen != 6 || protoLen != 4 {
		return 0, false
	}

	// sender protocol address follows the 8-byte fixed header and the
	// 6-byte sender hardware address
	return binary.BigEndian.Uint32(p[14:18]), true
}

func ipv4SourceIP(p []byte) (uint32, bool) {
	if len(p) < ipv4MinHeader {
		return 0, false
	}

	if p[0]>>4 != 4 {
		return 0, false
	}

	return binary.BigEndian.Uint32(p[12:16]), true
}

func macToUint64(mac []byte) uint64 {
	var v uint64
	for _, b := range mac {
		v = v<<8 | uint64(b)
	}
	return v
}
