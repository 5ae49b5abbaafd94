// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/progphil-bot/internal/configurator"
	"github.com/MKhiriev/progphil-bot/internal/configurator/adapters"
	"github.com/MKhiriev/progphil-bot/internal/logger"
)

// Adapters returns the registry used to bind [Configuration]: the common
// adapters plus [PresenceAdapter].
func Adapters() *configurator.Adapters {
	registry := adapters.Defaults()
	configurator.Register(registry, PresenceAdapter)

	return registry
}

// Load reads the source file named by bootstrap and mirrors it, together
// with the process environment, into a new [Configuration].
func Load(bootstrap *Bootstrap, log *logger.Logger) (*Configuration, error) {
	c, err := configurator.Open(bootstrap.EnvFile, Adapters(), log.GetChildLogger("configurator"))
	if err != nil {
		return nil, fmt.Errorf("error opening configuration source: %w", err)
	}

	return load(c)
}

func load(c configurator.Configurator) (*Configuration, error) {
	cfg := Default()
	if err := c.Mirror(cfg); err != nil {
		return nil, fmt.Errorf("error mirroring configuration: %w", err)
	}

	if cfg.InstanceID == uuid.Nil {
		cfg.InstanceID = newInstanceID()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newInstanceID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}

	return id
}
