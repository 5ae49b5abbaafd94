// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapters holds configurator adapters for common non-primitive field
// types.
package adapters

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/progphil-bot/internal/configurator"
)

// ErrEmptyLogLevel is returned by [LogLevel] for a value naming no level.
var ErrEmptyLogLevel = errors.New("empty log level")

// ListSeparator splits the raw value of []string fields.
const ListSeparator = ","

// Defaults returns a registry holding every adapter of this package.
func Defaults() *configurator.Adapters {
	a := configurator.NewAdapters()
	RegisterDefaults(a)

	return a
}

// RegisterDefaults adds every adapter of this package to a.
func RegisterDefaults(a *configurator.Adapters) {
	configurator.Register(a, Duration)
	configurator.Register(a, UUID)
	configurator.Register(a, LogLevel)
	configurator.Register(a, URL)
	configurator.Register(a, StringList)
}

// Duration parses Go duration strings such as "30s" or "1h30m".
func Duration(_, value string, _ configurator.Resolver) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %w", err)
	}

	return d, nil
}

// UUID parses any textual form accepted by uuid.Parse.
func UUID(_, value string, _ configurator.Resolver) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid: %w", err)
	}

	return id, nil
}

// LogLevel parses zerolog level names ("debug", "info", ...). An empty value
// is rejected: zerolog reads it as NoLevel, which silences every leveled
// event once set globally.
func LogLevel(_, value string, _ configurator.Resolver) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(value))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level: %w", err)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrEmptyLogLevel, value)
	}

	return level, nil
}

// URL parses absolute URLs only.
func URL(_, value string, _ configurator.Resolver) (*url.URL, error) {
	u, err := url.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("url %q is not absolute", value)
	}

	return u, nil
}

// StringList splits a comma separated value, trimming blanks and dropping
// empty items. An empty value yields an empty, non-nil slice.
func StringList(_, value string, _ configurator.Resolver) ([]string, error) {
	items := make([]string, 0)
	for item := range strings.SplitSeq(value, ListSeparator) {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items, nil
}
