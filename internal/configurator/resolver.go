// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import "os"

type source string

const (
	sourceFile    source = "file"
	sourceEnv     source = "env"
	sourceDefault source = "default"
)

// Get resolves key against the source file first (case-insensitive) and then
// against the process environment (exact case).
func (c *configurator) Get(key string) (string, bool) {
	value, _, ok := c.lookup(key)
	return value, ok
}

func (c *configurator) lookup(key string) (string, source, bool) {
	if value, ok := c.env.Get(key); ok {
		return value, sourceFile, true
	}

	if value, ok := os.LookupEnv(key); ok {
		return value, sourceEnv, true
	}

	return "", sourceDefault, false
}
