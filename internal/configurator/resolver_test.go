// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurator_Get_FileTakesPrecedence(t *testing.T) {
	// Arrange
	t.Setenv("PROGPHIL_TEST_TOKEN", "from-env")
	c := New(Environment{"progphil_test_token": "from-file"}, nil, nil)

	// Act
	value, ok := c.Get("PROGPHIL_TEST_TOKEN")

	// Assert
	require.True(t, ok)
	assert.Equal(t, "from-file", value)
}

func TestNew_LowercasesHandBuiltKeys(t *testing.T) {
	// Arrange
	unsetEnv(t, "PROGPHIL_TEST_MIXED")
	c := New(Environment{"PROGPHIL_TEST_Mixed": "from-file"}, nil, nil)

	// Act
	value, ok := c.Get("PROGPHIL_TEST_MIXED")

	// Assert
	require.True(t, ok)
	assert.Equal(t, "from-file", value)
}

func TestConfigurator_Get_FallsBackToEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("PROGPHIL_TEST_SHARDS", "4")
	c := New(Environment{}, nil, nil)

	// Act
	value, ok := c.Get("PROGPHIL_TEST_SHARDS")

	// Assert
	require.True(t, ok)
	assert.Equal(t, "4", value)
}

func TestConfigurator_Get_EnvironmentKeepsCase(t *testing.T) {
	// Arrange
	t.Setenv("PROGPHIL_TEST_CASE", "upper")
	unsetEnv(t, "progphil_test_case")
	c := New(nil, nil, nil)

	// Act
	_, ok := c.Get("progphil_test_case")

	// Assert
	assert.False(t, ok)
}

func TestConfigurator_Get_Absent(t *testing.T) {
	// Arrange
	unsetEnv(t, "PROGPHIL_TEST_ABSENT")
	c := New(Environment{"other": "x"}, nil, nil)

	// Act
	value, ok := c.Get("PROGPHIL_TEST_ABSENT")

	// Assert
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestConfigurator_Get_EmptyEnvironmentValueIsPresent(t *testing.T) {
	// Arrange
	t.Setenv("PROGPHIL_TEST_EMPTY", "")
	c := New(nil, nil, nil)

	// Act
	value, ok := c.Get("PROGPHIL_TEST_EMPTY")

	// Assert
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestOpen_ReadsSourceFile(t *testing.T) {
	// Arrange
	path := writeSource(t, "PROGPHIL_TEST_OPEN=yes\n")

	// Act
	c, err := Open(path, nil, nil)

	// Assert
	require.NoError(t, err)
	value, ok := c.Get("progphil_test_open")
	assert.True(t, ok)
	assert.Equal(t, "yes", value)
}

func TestOpen_Directory(t *testing.T) {
	// Act
	c, err := Open(t.TempDir(), nil, nil)

	// Assert
	require.Error(t, err)
	assert.Nil(t, c)
}

// Helpers

// unsetEnv removes key for the duration of the test and restores it after.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}
