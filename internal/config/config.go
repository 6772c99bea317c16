// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "NATSCONF_"

// Defaults applied before any other source.
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	DefaultConnectWait = 5 * time.Second
)

// StructuredConfig holds the settings of a natsconf run.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: variable name, itself prefixed with EnvPrefix.
type StructuredConfig struct {
	// DocumentPath is the connection document to resolve.
	// Env: NATSCONF_CONFIG, flag: -c / --config
	DocumentPath string `env:"CONFIG"`

	// Strict rejects documents containing unknown keys.
	// Env: NATSCONF_STRICT, flag: --strict
	Strict bool `env:"STRICT"`

	// ConnectWait bounds how long connect waits for a connection that is
	// retried in the background.
	// Env: NATSCONF_CONNECT_WAIT, flag: --connect-wait
	ConnectWait time.Duration `env:"CONNECT_WAIT"`

	// Log controls the diagnostic output.
	Log Log `envPrefix:"LOG_"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (trace, debug, info, warn, error, ...).
	// Env: NATSCONF_LOG_LEVEL, flag: --log-level
	Level string `env:"LEVEL"`

	// Format is "console" or "json".
	// Env: NATSCONF_LOG_FORMAT, flag: --log-format
	Format string `env:"FORMAT"`
}

// ZerologLevel returns the parsed log level. It is only meaningful on a
// validated config.
func (l Log) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(l.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// GetStructuredConfig loads, merges, and validates the settings from
// defaults, the environment and the flags in fs that were set on the command
// line. fs must carry the flags registered by RegisterFlags.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		build()
}
