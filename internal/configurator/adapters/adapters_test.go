// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapters

import (
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/progphil-bot/internal/configurator"
	"github.com/MKhiriev/progphil-bot/internal/mock"
)

func TestDefaults_RegistersEveryType(t *testing.T) {
	registry := Defaults()

	for _, typ := range []reflect.Type{
		reflect.TypeFor[time.Duration](),
		reflect.TypeFor[uuid.UUID](),
		reflect.TypeFor[zerolog.Level](),
		reflect.TypeFor[*url.URL](),
		reflect.TypeFor[[]string](),
	} {
		_, ok := registry.Get(typ)
		assert.True(t, ok, typ.String())
	}
}

func TestAdapters_DoNotUseResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no EXPECT: any secondary lookup fails the test
	resolver := mock.NewMockResolver(ctrl)

	_, err := Duration("KEY", "1s", resolver)
	require.NoError(t, err)
	_, err = UUID("KEY", "0190f5a4-7c3e-7b4a-9d2e-1f2a3b4c5d6e", resolver)
	require.NoError(t, err)
	_, err = LogLevel("KEY", "info", resolver)
	require.NoError(t, err)
	_, err = URL("KEY", "https://example.org", resolver)
	require.NoError(t, err)
	_, err = StringList("KEY", "a,b", resolver)
	require.NoError(t, err)
}

func TestDuration(t *testing.T) {
	tests := []struct {
		raw      string
		expected time.Duration
		wantErr  bool
	}{
		{"30s", 30 * time.Second, false},
		{"1h30m", 90 * time.Minute, false},
		{"0", 0, false},
		{"30", 0, true},
		{"soon", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			d, err := Duration("TIMEOUT", tt.raw, nil)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestUUID(t *testing.T) {
	id := uuid.MustParse("0190f5a4-7c3e-7b4a-9d2e-1f2a3b4c5d6e")

	got, err := UUID("ID", id.String(), nil)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = UUID("ID", "not-a-uuid", nil)
	require.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		raw      string
		expected zerolog.Level
		wantErr  bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{"Warn", zerolog.WarnLevel, false},
		{"disabled", zerolog.Disabled, false},
		{"verbose", zerolog.NoLevel, true},
		{"", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			level, err := LogLevel("LOG_LEVEL", tt.raw, nil)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestURL(t *testing.T) {
	u, err := URL("WEBHOOK", "https://discord.com/api/webhooks/1/abc", nil)
	require.NoError(t, err)
	assert.Equal(t, "discord.com", u.Host)

	_, err = URL("WEBHOOK", "/relative/path", nil)
	require.Error(t, err)

	_, err = URL("WEBHOOK", "http://[::1", nil)
	require.Error(t, err)
}

func TestStringList(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"", []string{}},
		{"123", []string{"123"}},
		{"123,456", []string{"123", "456"}},
		{" 123 , ,456, ", []string{"123", "456"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			items, err := StringList("GUILDS", tt.raw, nil)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestDefaults_MirrorThroughConfigurator(t *testing.T) {
	type settings struct {
		Timeout time.Duration `cfg:"TIMEOUT"`
		ID      uuid.UUID     `cfg:"ID"`
		Level   zerolog.Level `cfg:"LEVEL"`
		Hook    *url.URL      `cfg:"HOOK"`
		Guilds  []string      `cfg:"GUILDS"`
	}

	// Arrange
	c := configurator.New(configurator.Environment{
		"timeout": "5s",
		"id":      "0190f5a4-7c3e-7b4a-9d2e-1f2a3b4c5d6e",
		"level":   "warn",
		"hook":    "https://example.org/hook",
		"guilds":  "1,2",
	}, Defaults(), nil)
	cfg := &settings{}

	// Act
	err := c.Mirror(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "0190f5a4-7c3e-7b4a-9d2e-1f2a3b4c5d6e", cfg.ID.String())
	assert.Equal(t, zerolog.WarnLevel, cfg.Level)
	require.NotNil(t, cfg.Hook)
	assert.Equal(t, "/hook", cfg.Hook.Path)
	assert.Equal(t, []string{"1", "2"}, cfg.Guilds)
}

func TestLogLevel_EmptyIsRejected(t *testing.T) {
	level, err := LogLevel("LOG_LEVEL", "", nil)

	require.ErrorIs(t, err, ErrEmptyLogLevel)
	assert.Equal(t, zerolog.NoLevel, level)
}

func TestDefaults_ConversionFailure(t *testing.T) {
	type settings struct {
		Timeout time.Duration `cfg:"TIMEOUT"`
	}

	c := configurator.New(configurator.Environment{"timeout": "forever"}, Defaults(), nil)

	err := c.Mirror(&settings{})

	assert.ErrorIs(t, err, configurator.ErrConversionFailure)
}
