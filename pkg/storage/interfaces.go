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

//go:generate mockgen -destination=mock_storage.go -package=storage github.com/ClassWYZ/floodlight/pkg/storage Store

// Package storage defines the row store the device manager mirrors its
// state into. The registry treats it as an opaque table store: device
// rows keyed by device key and port-channel rows keyed by switch|port.
package storage

import (
	"context"

	"github.com/ClassWYZ/floodlight/pkg/models"
)

// Store is the durable mirror of the registry. Writes are best effort
// during operation; reads happen once at startup and must succeed before
// packet processing begins.
type Store interface {
	UpsertDevice(ctx context.Context, row *models.DeviceRow) error
	DeleteDevice(ctx context.Context, deviceKey uint64) error
	ListDevices(ctx context.Context) ([]*models.DeviceRow, error)

	UpsertPortChannel(ctx context.Context, row *models.PortChannelRow) error
	DeletePortChannel(ctx context.Context, id string) error
	ListPortChannels(ctx context.Context) ([]*models.PortChannelRow, error)

	Close() error
}
