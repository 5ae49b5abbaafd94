// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import "reflect"

// Adapter converts the raw value of key into a value of the field type it is
// registered for. resolver may be used for secondary lookups.
type Adapter func(key, value string, resolver Resolver) (any, error)

// Adapters maps field types to the adapters converting them.
//
// The registry is filled by the application before Mirror runs and is only
// read during a bind, so it carries no locking.
type Adapters struct {
	adapters map[reflect.Type]Adapter
}

// NewAdapters returns an empty registry.
func NewAdapters() *Adapters {
	return &Adapters{
		adapters: make(map[reflect.Type]Adapter),
	}
}

// Get returns the adapter registered for exactly t.
func (a *Adapters) Get(t reflect.Type) (Adapter, bool) {
	if a == nil {
		return nil, false
	}

	adapter, ok := a.adapters[t]
	return adapter, ok
}

// Set registers adapter for t, replacing any previous one.
func (a *Adapters) Set(t reflect.Type, adapter Adapter) {
	a.adapters[t] = adapter
}

// Register is the typed form of [Adapters.Set].
func Register[T any](a *Adapters, fn func(key, value string, resolver Resolver) (T, error)) {
	a.Set(reflect.TypeFor[T](), func(key, value string, resolver Resolver) (any, error) {
		return fn(key, value, resolver)
	})
}
