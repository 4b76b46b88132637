package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/logger"
	"github.com/ClassWYZ/floodlight/pkg/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *devicemanager.DeviceManager) {
	t.Helper()

	m := devicemanager.New(nil, nil, nil, logger.NewTestLogger())
	ts := httptest.NewServer(NewServer(m, logger.NewTestLogger()).Router())
	t.Cleanup(ts.Close)

	return ts, m
}

func seedDevice(t *testing.T, m *devicemanager.DeviceManager, mac uint64, vlan *uint16, ip *uint32, sw uint64, port int) *devicemanager.Device {
	t.Helper()

	dev, err := m.LearnDeviceByEntity(context.Background(), &models.Entity{
		MAC:        mac,
		VLAN:       vlan,
		IPv4:       ip,
		SwitchDPID: sw,
		SwitchPort: port,
		LastSeen:   time.Now(),
	})
	require.NoError(t, err)

	return dev
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func TestListDevices(t *testing.T) {
	ts, m := newTestServer(t)

	var out []*DeviceResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices", &out))
	assert.Empty(t, out)

	vlan := uint16(5)
	ip := uint32(0xc0a80101)
	seedDevice(t, m, 0x004433221100, &vlan, &ip, 1, 3)
	seedDevice(t, m, 0x004433221101, nil, nil, 1, 4)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices", &out))
	require.Len(t, out, 2)
	assert.Equal(t, "00:44:33:22:11:00", out[0].MAC)
	assert.Equal(t, []uint16{5}, out[0].VlanIDs)
	assert.Equal(t, []string{"192.168.1.1"}, out[0].IPv4Addresses)
	assert.Equal(t, []models.SwitchPort{{SwitchDPID: 1, Port: 3}}, out[0].AttachmentPoints)
	assert.Equal(t, []string{"default"}, out[0].EntityClasses)
}

func TestGetDeviceByKey(t *testing.T) {
	ts, m := newTestServer(t)
	dev := seedDevice(t, m, 0x004433221100, nil, nil, 1, 3)

	var out DeviceResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/key/1", &out))
	assert.Equal(t, dev.Key(), out.DeviceKey)
	assert.Equal(t, "00:44:33:22:11:00", out.MAC)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/devices/key/99", &out))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/devices/key/nope", &out))
}

func TestGetDevicesByMAC(t *testing.T) {
	ts, m := newTestServer(t)

	vlan := uint16(5)
	tagged := seedDevice(t, m, 0x004433221100, &vlan, nil, 1, 3)
	untagged := seedDevice(t, m, 0x004433221100, nil, nil, 1, 4)

	var out []*DeviceResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/mac/00:44:33:22:11:00", &out))
	assert.Len(t, out, 2)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/mac/00:44:33:22:11:00?vlan=5", &out))
	require.Len(t, out, 1)
	assert.Equal(t, tagged.Key(), out[0].DeviceKey)
	assert.NotEqual(t, untagged.Key(), out[0].DeviceKey)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/mac/00:44:33:22:11:00?vlan=6", &out))
	assert.Empty(t, out)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/devices/mac/zz:zz", &out))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/devices/mac/00:44:33:22:11:00?vlan=bad", &out))
}

func TestGetDevicesByIP(t *testing.T) {
	ts, m := newTestServer(t)

	ip := uint32(0xc0a80101)
	dev := seedDevice(t, m, 0x004433221100, nil, &ip, 1, 3)

	var out []*DeviceResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/ip/192.168.1.1", &out))
	require.Len(t, out, 1)
	assert.Equal(t, dev.Key(), out[0].DeviceKey)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/devices/ip/192.168.1.2", &out))
	assert.Empty(t, out)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/devices/ip/not-an-ip", &out))
}
