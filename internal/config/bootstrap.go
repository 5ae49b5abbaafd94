// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Bootstrap holds the options of the configuration loader itself.
//
// Struct tags:
//   - env — environment variable name (caarlos0/env).
type Bootstrap struct {
	// EnvFile is the KEY=VALUE source file mirrored into [Configuration].
	// A missing file is not an error.
	EnvFile string `env:"CONFIGURATOR_FILE"`

	// Debug switches logging to the human-readable console writer.
	Debug bool `env:"CONFIGURATOR_DEBUG"`
}

// GetBootstrap assembles the loader options from environment variables and
// the command-line arguments args (without the program name).
func GetBootstrap(args []string) (*Bootstrap, error) {
	return newBootstrapBuilder().
		withEnv().
		withFlags(args).
		build()
}
