/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "devmanager.json")

	content := `{
		"listen_addr": ":8090",
		"nats": {
			"url": "nats://localhost:4222",
			"stream_name": "packets",
			"consumer_name": "devmanager",
			"subject": "packets.in",
			"device_bucket": "devices",
			"port_channel_bucket": "port_channels"
		},
		"flap_cooldown": "5m",
		"storage_update_interval": "30s",
		"internal_ports": [{"switch_dpid": 1, "port": 2}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg models.CoreConfig
	require.NoError(t, LoadFile(context.Background(), path, &cfg))

	assert.Equal(t, ":8090", cfg.ListenAddr)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "packets", cfg.NATS.StreamName)
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.FlapCooldown))
	assert.Equal(t, 30*time.Second, time.Duration(cfg.StorageUpdateInterval))
	require.Len(t, cfg.InternalPorts, 1)
	assert.Equal(t, models.SwitchPort{SwitchDPID: 1, Port: 2}, cfg.InternalPorts[0])
}

func TestLoadFileErrors(t *testing.T) {
	var cfg models.CoreConfig

	err := LoadFile(context.Background(), "/nonexistent/devmanager.json", &cfg)
	assert.Error(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Error(t, LoadFile(context.Background(), path, &cfg))
}

func TestLoadFileValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "incomplete.json")

	// Parses fine but names no stream to consume from.
	content := `{"listen_addr": ":8090", "nats": {"url": "nats://localhost:4222"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var cfg models.CoreConfig
	err := LoadFile(context.Background(), path, &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream_name")
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("DEVMANAGER_TEST_KEY", "from-env")
	assert.Equal(t, "from-env", EnvOrDefault("DEVMANAGER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvOrDefault("DEVMANAGER_TEST_KEY_UNSET", "fallback"))
}
