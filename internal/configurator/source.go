// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configurator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const (
	separator     = "="
	commentMarker = "#"
)

// Environment holds the key-value pairs read from a source file.
// Keys are always stored lowercased; [Environment.Get] only finds lowercase
// keys, and [New] lowercases the keys of a hand-built Environment.
type Environment map[string]string

// LoadEnvironment reads the key-value file at path.
//
// A missing file is not an error: an empty Environment is returned instead.
// Any other failure to open or read the file is returned wrapped.
func LoadEnvironment(path string) (Environment, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Environment{}, nil
		}
		return nil, fmt.Errorf("error opening configuration file: %w", err)
	}
	defer file.Close()

	return ParseEnvironment(file)
}

// ParseEnvironment reads KEY=VALUE lines from r.
//
// Lines starting with '#' and lines without '=' produce no entry; a bare KEY
// line is dropped, not bound to "". Write KEY= for an empty value. The line
// is split on the first '=' only, so values may contain '='. Nothing is
// trimmed, unquoted or unescaped. Lines have no length limit.
func ParseEnvironment(r io.Reader) (Environment, error) {
	env := Environment{}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading configuration file: %w", err)
		}

		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.Contains(line, separator) && !strings.HasPrefix(line, commentMarker) {
			key, value, _ := strings.Cut(line, separator)
			env[strings.ToLower(key)] = value
		}

		if err != nil {
			return env, nil
		}
	}
}

// Get returns the value stored for key, ignoring key case.
func (e Environment) Get(key string) (string, bool) {
	value, ok := e[strings.ToLower(key)]
	return value, ok
}
