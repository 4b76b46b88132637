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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ClassWYZ/floodlight/pkg/logger"
)

var (
	errInvalidDuration     = errors.New("invalid duration")
	errMissingStreamName   = errors.New("nats stream_name is required")
	errMissingConsumerName = errors.New("nats consumer_name is required")
)

// Duration is a time.Duration that unmarshals from either a duration
// string ("30s") or a number of nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		dur, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration: %w", err)
		}

		*d = Duration(dur)

		return nil
	default:
		return errInvalidDuration
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// NATSConfig carries the JetStream wiring for both the packet-in stream
// and the KV row store.
type NATSConfig struct {
	URL               string `json:"url"`
	StreamName        string `json:"stream_name"`
	ConsumerName      string `json:"consumer_name"`
	Subject           string `json:"subject"`
	DeviceBucket      string `json:"device_bucket"`
	PortChannelBucket string `json:"port_channel_bucket"`
}

// TLSConfig holds the certificate material for an mTLS connection.
type TLSConfig struct {
	CertFile string `json:"cert_file"`
	KeyFile  string `json:"key_file"`
	CAFile   string `json:"ca_file"`
}

// SecurityConfig selects the transport security for the NATS connection.
// Mode "mtls" requires the TLS file set; any other mode connects plain.
type SecurityConfig struct {
	Mode       string    `json:"mode"`
	CertDir    string    `json:"cert_dir,omitempty"`
	ServerName string    `json:"server_name,omitempty"`
	TLS        TLSConfig `json:"tls"`
}

// CoreConfig is the device manager daemon configuration.
type CoreConfig struct {
	ListenAddr            string          `json:"listen_addr"`
	NATS                  NATSConfig      `json:"nats"`
	Security              *SecurityConfig `json:"security,omitempty"`
	FlapCooldown          Duration        `json:"flap_cooldown"`
	StorageUpdateInterval Duration        `json:"storage_update_interval"`
	DeviceExpiry          Duration        `json:"device_expiry"`
	InternalPorts         []SwitchPort    `json:"internal_ports,omitempty"`
	Logging               *logger.Config  `json:"logging,omitempty"`
}

// Validate checks the fields the daemon cannot default. The NATS URL is
// allowed to be empty because it falls back to the NATS_URL environment
// variable at startup.
func (c *CoreConfig) Validate() error {
	if c.NATS.StreamName == "" {
		return errMissingStreamName
	}
	if c.NATS.ConsumerName == "" {
		return errMissingConsumerName
	}

	return nil
}
