// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Configuration is the bound bot configuration.
//
// Struct tags:
//   - cfg — lookup key and directives for the configurator; `cfg:"-"` fields
//     are never bound.
type Configuration struct {
	// DiscordToken is the bot token used to log in on every shard.
	DiscordToken string `cfg:"DISCORD_TOKEN,required"`

	// DiscordShards is the total number of shards to log in.
	DiscordShards int `cfg:"DISCORD_SHARDS"`

	// LogLevel narrows the global log level once the configuration is bound.
	LogLevel zerolog.Level `cfg:"LOG_LEVEL"`

	// InstanceID identifies this process in logs. Generated when absent.
	InstanceID uuid.UUID `cfg:"BOT_INSTANCE_ID"`

	// RequestTimeout bounds every REST request made to Discord.
	RequestTimeout time.Duration `cfg:"DISCORD_REQUEST_TIMEOUT"`

	// MessageCacheSize is the number of messages kept per channel in the
	// session state.
	MessageCacheSize int `cfg:"DISCORD_MESSAGE_CACHE"`

	// Presence is the activity shown on every shard. The text is read from
	// DISCORD_ACTIVITY_TEXT.
	Presence Presence `cfg:"DISCORD_ACTIVITY"`

	// DevGuilds receive a guild-scoped copy of the commands so that changes
	// show up without waiting for global propagation.
	DevGuilds []string `cfg:"DISCORD_DEV_GUILDS"`

	// Build is filled from linker flags by the entry point.
	Build BuildInfo `cfg:"-"`
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Default returns the configuration holding every default value. Fields that
// are not found in any source keep these values.
func Default() *Configuration {
	return &Configuration{
		DiscordShards:    1,
		LogLevel:         zerolog.InfoLevel,
		RequestTimeout:   20 * time.Second,
		MessageCacheSize: 10,
		DevGuilds:        []string{},
	}
}

// MarshalZerologObject logs the configuration without the token.
func (cfg *Configuration) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("discord_token_set", cfg.DiscordToken != "").
		Int("discord_shards", cfg.DiscordShards).
		Str("log_level", cfg.LogLevel.String()).
		Str("instance_id", cfg.InstanceID.String()).
		Dur("request_timeout", cfg.RequestTimeout).
		Int("message_cache_size", cfg.MessageCacheSize).
		Strs("dev_guilds", cfg.DevGuilds)

	if !cfg.Presence.IsZero() {
		e.Str("presence", cfg.Presence.String())
	}
}
