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

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

const (
	DefaultDeviceBucket      = "devices"
	DefaultPortChannelBucket = "port_channels"
)

// NatsStore keeps device and port-channel rows in two JetStream KV
// buckets, one JSON document per row.
type NatsStore struct {
	devices      jetstream.KeyValue
	portChannels jetstream.KeyValue
}

// NewNatsStore creates (or binds to) the two KV buckets on an existing
// JetStream context.
func NewNatsStore(ctx context.Context, js jetstream.JetStream, deviceBucket, portChannelBucket string) (*NatsStore, error) {
	if deviceBucket == "" {
		deviceBucket = DefaultDeviceBucket
	}
	if portChannelBucket == "" {
		portChannelBucket = DefaultPortChannelBucket
	}

	devices, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: deviceBucket})
	if err != nil {
		return nil, fmt.Errorf("failed to create device bucket: %w", err)
	}

	portChannels, err := js.CreateKeyValue(ctx, jetstream.KeyValueConfig{Bucket: portChannelBucket})
	if err != nil {
		return nil, fmt.Errorf("failed to create port-channel bucket: %w", err)
	}

	return &NatsStore{devices: devices, portChannels: portChannels}, nil
}

func (n *NatsStore) UpsertDevice(ctx context.Context, row *models.DeviceRow) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal device row: %w", err)
	}

	if _, err := n.devices.Put(ctx, deviceRowKey(row.DeviceKey), data); err != nil {
		return fmt.Errorf("failed to put device row %d: %w", row.DeviceKey, err)
	}

	return nil
}

func (n *NatsStore) DeleteDevice(ctx context.Context, deviceKey uint64) error {
	err := n.devices.Delete(ctx, deviceRowKey(deviceKey))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete device row %d: %w", deviceKey, err)
	}

	return nil
}

func (n *NatsStore) ListDevices(ctx context.Context) ([]*models.DeviceRow, error) {
	keys, err := bucketKeys(ctx, n.devices)
	if err != nil {
		return nil, fmt.Errorf("failed to list device rows: %w", err)
	}

	rows := make([]*models.DeviceRow, 0, len(keys))

	for _, key := range keys {
		entry, err := n.devices.Get(ctx, key)
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get device row %s: %w", key, err)
		}

		var row models.DeviceRow
		if err := json.Unmarshal(entry.Value(), &row); err != nil {
			return nil, fmt.Errorf("failed to unmarshal device row %s: %w", key, err)
		}

		rows = append(rows, &row)
	}

	return rows, nil
}

func (n *NatsStore) UpsertPortChannel(ctx context.Context, row *models.PortChannelRow) error {
	if row.ID == "" {
		row.ID = row.RowID()
	}

	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal port-channel row: %w", err)
	}

	if _, err := n.portChannels.Put(ctx, encodePortChannelKey(row.ID), data); err != nil {
		return fmt.Errorf("failed to put port-channel row %s: %w", row.ID, err)
	}

	return nil
}

func (n *NatsStore) DeletePortChannel(ctx context.Context, id string) error {
	err := n.portChannels.Delete(ctx, encodePortChannelKey(id))
	if err != nil && !errors.Is(err, jetstream.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete port-channel row %s: %w", id, err)
	}

	return nil
}

func (n *NatsStore) ListPortChannels(ctx context.Context) ([]*models.PortChannelRow, error) {
	keys, err := bucketKeys(ctx, n.portChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to list port-channel rows: %w", err)
	}

	rows := make([]*models.PortChannelRow, 0, len(keys))

	for _, key := range keys {
		entry, err := n.portChannels.Get(ctx, key)
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get port-channel row %s: %w", key, err)
		}

		var row models.PortChannelRow
		if err := json.Unmarshal(entry.Value(), &row); err != nil {
			return nil, fmt.Errorf("failed to unmarshal port-channel row %s: %w", key, err)
		}

		rows = append(rows, &row)
	}

	return rows, nil
}

func (*NatsStore) Close() error {
	// The JetStream context is owned by the caller.
	return nil
}

func bucketKeys(ctx context.Context, kv jetstream.KeyValue) ([]string, error) {
	keys, err := kv.Keys(ctx)
	if errors.Is(err, jetstream.ErrNoKeysFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return keys, nil
}

func deviceRowKey(deviceKey uint64) string {
	return strconv.FormatUint(deviceKey, 10)
}

// encodePortChannelKey maps row IDs onto the KV key charset; '|' is not a
// valid JetStream key character.
func encodePortChannelKey(id string) string {
	out := make([]byte, 0, len(id))
	for i := 0; i < len(id); i++ {
		if id[i] == '|' {
			out = append(out, '_')
		} else {
			out = append(out, id[i])
		}
	}
	return string(out)
}
