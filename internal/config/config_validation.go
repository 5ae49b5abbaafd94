// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the invariants the configurator cannot express with
// directives alone.
func (cfg *Configuration) validate() error {
	if cfg.DiscordShards < 1 {
		return ErrInvalidShardCount
	}

	if cfg.MessageCacheSize < 0 {
		return ErrInvalidMessageCache
	}

	if cfg.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	return nil
}
