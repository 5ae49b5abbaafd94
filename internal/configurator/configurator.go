// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"strings"

	"github.com/MKhiriev/progphil-bot/internal/logger"
)

// DefaultPath is the source file read when the application does not name one.
const DefaultPath = ".env"

type configurator struct {
	env      Environment
	adapters *Adapters
	logger   *logger.Logger
}

// New returns a Configurator reading env before the process environment.
// Keys of env are lowercased. adapters may be nil when the target has only
// predeclared field types.
func New(env Environment, adapters *Adapters, log *logger.Logger) Configurator {
	normalized := make(Environment, len(env))
	for key, value := range env {
		normalized[strings.ToLower(key)] = value
	}
	env = normalized
	if log == nil {
		log = logger.Nop()
	}

	return &configurator{
		env:      env,
		adapters: adapters,
		logger:   log,
	}
}

// Open loads the source file at path and returns a Configurator over it.
// A missing file yields a Configurator backed by the process environment only.
func Open(path string, adapters *Adapters, log *logger.Logger) (Configurator, error) {
	env, err := LoadEnvironment(path)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.Debug().Str("path", path).Int("entries", len(env)).Msg("configuration source loaded")
	}

	return New(env, adapters, log), nil
}
