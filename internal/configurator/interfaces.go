// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

//go:generate mockgen -source=interfaces.go -destination=../mock/configurator_mock.go -package=mock

// Resolver looks up raw configuration values.
//
// Adapters receive the Resolver of the running bind so they can read
// secondary keys while converting their own value.
type Resolver interface {
	// Get returns the raw value of key and whether it was found at all.
	Get(key string) (string, bool)
}

// Configurator mirrors resolved values into the fields of a configuration
// struct.
type Configurator interface {
	Resolver

	// Mirror binds every non-ignored field of target, which must be a non-nil
	// pointer to a struct. The first failure aborts the pass and is returned
	// as a *FieldError; the target may be partially written in that case and
	// must not be used.
	Mirror(target any) error
}
