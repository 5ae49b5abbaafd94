// Package config defines the bot configuration and loads it at startup.
//
// Loading happens in two steps:
//  1. [GetBootstrap] reads the options of the loader itself (which source file
//     to read, debug output) from environment variables and command-line
//     flags; flags override environment variables.
//  2. [Load] mirrors the source file and the process environment into a
//     [Configuration] through the configurator package. Values from the
//     source file take precedence over the process environment.
//
// Any error returned by Load is fatal: the bot must not start with a partially
// bound configuration.
package config
