// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapters_GetSet(t *testing.T) {
	// Arrange
	adapters := NewAdapters()
	typ := reflectTypeOf[endpoint]()

	// Act
	_, before := adapters.Get(typ)
	adapters.Set(typ, func(_, value string, _ Resolver) (any, error) {
		return endpoint{Host: value}, nil
	})
	adapter, after := adapters.Get(typ)

	// Assert
	assert.False(t, before)
	require.True(t, after)
	result, err := adapter("KEY", "host", nil)
	require.NoError(t, err)
	assert.Equal(t, endpoint{Host: "host"}, result)
}

func TestAdapters_ExactTypeOnly(t *testing.T) {
	// Arrange
	adapters := NewAdapters()
	Register(adapters, func(_, _ string, _ Resolver) (endpoint, error) {
		return endpoint{}, nil
	})

	// Act
	_, pointer := adapters.Get(reflectTypeOf[*endpoint]())
	_, value := adapters.Get(reflectTypeOf[endpoint]())

	// Assert
	assert.False(t, pointer)
	assert.True(t, value)
}

func TestAdapters_SetReplaces(t *testing.T) {
	// Arrange
	adapters := NewAdapters()
	Register(adapters, func(_, _ string, _ Resolver) (endpoint, error) {
		return endpoint{Host: "first"}, nil
	})
	Register(adapters, func(_, _ string, _ Resolver) (endpoint, error) {
		return endpoint{Host: "second"}, nil
	})

	// Act
	adapter, ok := adapters.Get(reflectTypeOf[endpoint]())
	require.True(t, ok)
	result, err := adapter("", "", nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, endpoint{Host: "second"}, result)
}

func TestAdapters_NilRegistry(t *testing.T) {
	var adapters *Adapters

	_, ok := adapters.Get(reflectTypeOf[endpoint]())

	assert.False(t, ok)
}

func reflectTypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
