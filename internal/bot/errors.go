// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bot

import "errors"

var (
	errNoShards           = errors.New("no shards are configured")
	errMissingToken       = errors.New("discord token is empty")
	errDuplicateCommand   = errors.New("duplicate command name")
	errUnknownCommand     = errors.New("unknown command")
	errUnexpectedResponse = errors.New("command returned no response")
)
