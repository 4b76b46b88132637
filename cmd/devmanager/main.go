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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/ClassWYZ/floodlight/pkg/api"
	"github.com/ClassWYZ/floodlight/pkg/config"
	"github.com/ClassWYZ/floodlight/pkg/devicemanager"
	"github.com/ClassWYZ/floodlight/pkg/dispatch"
	"github.com/ClassWYZ/floodlight/pkg/lifecycle"
	"github.com/ClassWYZ/floodlight/pkg/models"
	"github.com/ClassWYZ/floodlight/pkg/natsutil"
	"github.com/ClassWYZ/floodlight/pkg/storage"
	"github.com/ClassWYZ/floodlight/pkg/version"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := flag.String("config", "/etc/floodlight/devmanager.json", "Path to device manager config file")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetFullVersion())
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg models.CoreConfig
	if err := config.LoadFile(ctx, *configPath, &cfg); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLogger, err := lifecycle.CreateComponentLogger("devmanager", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appLogger.Info().
		Str("version", version.GetFullVersion()).
		Msg("Starting device manager")

	natsURL := cfg.NATS.URL
	if natsURL == "" {
		natsURL = config.EnvOrDefault("NATS_URL", nats.DefaultURL)
	}

	natsOpts, err := natsutil.ConnectOptions(cfg.Security)
	if err != nil {
		return fmt.Errorf("failed to build NATS security options: %w", err)
	}

	nc, err := nats.Connect(natsURL, natsOpts...)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("failed to create JetStream context: %w", err)
	}

	store, err := storage.NewNatsStore(ctx, js, cfg.NATS.DeviceBucket, cfg.NATS.PortChannelBucket)
	if err != nil {
		return fmt.Errorf("failed to create row store: %w", err)
	}
	defer func() { _ = store.Close() }()

	syncer := devicemanager.NewSynchronizer(store, time.Duration(cfg.StorageUpdateInterval), appLogger)

	manager := devicemanager.New(
		&devicemanager.Config{
			FlapCooldown: time.Duration(cfg.FlapCooldown),
			DeviceExpiry: time.Duration(cfg.DeviceExpiry),
		},
		devicemanager.NewStaticTopology(cfg.InternalPorts),
		syncer,
		appLogger,
	)

	// Storage must hydrate before any observation is accepted; a read
	// failure here is fatal.
	if err := manager.Startup(ctx); err != nil {
		return err
	}
	defer manager.Shutdown()

	consumer, err := dispatch.NewConsumer(ctx, js,
		cfg.NATS.StreamName, cfg.NATS.ConsumerName, cfg.NATS.Subject, appLogger)
	if err != nil {
		return fmt.Errorf("failed to create packet-in consumer: %w", err)
	}

	processor := dispatch.NewProcessor(manager, appLogger)

	go consumer.ProcessMessages(ctx, processor)

	server := api.NewServer(manager, appLogger)

	listenAddr := cfg.ListenAddr
	if listenAddr == "" {
		listenAddr = ":8099"
	}

	if err := server.Start(ctx, listenAddr); err != nil {
		return fmt.Errorf("admin API server failed: %w", err)
	}

	return nil
}
