package api

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

// DeviceResponse is the wire form of a resolved device.
type DeviceResponse struct {
	DeviceKey        uint64              `json:"device_key"`
	MAC              string              `json:"mac"`
	VlanIDs          []uint16            `json:"vlan_ids,omitempty"`
	IPv4Addresses    []string            `json:"ipv4_addresses,omitempty"`
	AttachmentPoints []models.SwitchPort `json:"attachment_points,omitempty"`
	EntityClasses    []string            `json:"entity_classes,omitempty"`
	LastSeen         string              `json:"last_seen"`
}

func deviceToResponse(dev *devicemanager.Device) *DeviceResponse {
	ips := dev.IPv4Addresses()
	ipStrings := make([]string, 0, len(ips))
	for _, ip := range ips {
		ipStrings = append(ipStrings, models.FormatIPv4(ip))
	}

	classes := dev.EntityClasses()
	classNames := make([]string, 0, len(classes))
	for _, c := range classes {
		classNames = append(classNames, c.Name())
	}

	return &DeviceResponse{
		DeviceKey:        dev.Key(),
		MAC:              dev.MACAddressString(),
		VlanIDs:          dev.VlanIDs(),
		IPv4Addresses:    ipStrings,
		AttachmentPoints: dev.AttachmentPoints(),
		EntityClasses:    classNames,
		LastSeen:         dev.LastSeen().Format("2006-01-02T15:04:05.000Z07:00"),
	}
}

func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.devices.AllDevices()

	out := make([]*DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		out = append(out, deviceToResponse(dev))
	}

	s.writeJSON(w, out)
}

func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	key, err := strconv.ParseUint(mux.Vars(r)["key"], 10, 64)
	if err != nil {
		http.Error(w, "invalid device key", http.StatusBadRequest)
		return
	}

	dev, ok := s.devices.GetDevice(key)
	if !ok {
		http.Error(w, "device not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, deviceToResponse(dev))
}

func (s *Server) handleGetDevicesByMAC(w http.ResponseWriter, r *http.Request) {
	hwAddr, err := net.ParseMAC(mux.Vars(r)["mac"])
	if err != nil || len(hwAddr) != 6 {
		http.Error(w, "invalid MAC address", http.StatusBadRequest)
		return
	}

	var mac uint64
	for _, b := range hwAddr {
		mac = mac<<8 | uint64(b)
	}

	var devices []*devicemanager.Device

	if vlanParam := r.URL.Query().Get("vlan"); vlanParam != "" {
		vlan64, err := strconv.ParseUint(vlanParam, 10, 12)
		if err != nil {
			http.Error(w, "invalid VLAN id", http.StatusBadRequest)
			return
		}

		vlan := uint16(vlan64)
		devices = s.devices.FindDevicesByMACVlan(mac, &vlan)
	} else {
		devices = s.devices.FindDevicesByMAC(mac)
	}

	out := make([]*DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		out = append(out, deviceToResponse(dev))
	}

	s.writeJSON(w, out)
}

func (s *Server) handleGetDevicesByIP(w http.ResponseWriter, r *http.Request) {
	ip := net.ParseIP(mux.Vars(r)["ip"])
	if ip == nil || ip.To4() == nil {
		http.Error(w, "invalid IPv4 address", http.StatusBadRequest)
		return
	}

	v4 := ip.To4()
	addr := uint32(v4[0])<<24 | uint32(v4[1])<<16 | uint32(v4[2])<<8 | uint32(v4[3])

	devices := s.devices.FindDevicesByIPv4(addr)

	out := make([]*DeviceResponse, 0, len(devices))
	for _, dev := range devices {
		out = append(out, deviceToResponse(dev))
	}

	s.writeJSON(w, out)
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode API response")
	}
}
