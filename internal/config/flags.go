// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by RegisterFlags.
const (
	FlagConfig      = "config"
	FlagStrict      = "strict"
	FlagConnectWait = "connect-wait"
	FlagLogLevel    = "log-level"
	FlagLogFormat   = "log-format"
)

// RegisterFlags defines the natsconf flags on fs.
//
// Flags:
//
//	-c/--config     connection document path
//	--strict        reject unknown document keys
//	--connect-wait  how long connect waits for a retried connection (e.g. "5s")
//	--log-level     zerolog level name
//	--log-format    console or json
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "Connection document path (YAML, or JSON with a .json extension)")
	fs.Bool(FlagStrict, false, "Reject unknown keys in the connection document")
	fs.Duration(FlagConnectWait, DefaultConnectWait, "How long connect waits for the connection (e.g. 5s, 1m)")
	fs.String(FlagLogLevel, DefaultLogLevel, "Log level (trace, debug, info, warn, error)")
	fs.String(FlagLogFormat, DefaultLogFormat, "Log format (console, json)")
}

// parseFlags collects the flags that were set explicitly. Flags left at their
// default value do not override other sources. Flags missing from fs are
// skipped, so a command may register only a subset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil {
		return cfg, nil
	}

	var err error
	if fs.Changed(FlagConfig) {
		if cfg.DocumentPath, err = fs.GetString(FlagConfig); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagConfig, err)
		}
	}
	if fs.Changed(FlagStrict) {
		if cfg.Strict, err = fs.GetBool(FlagStrict); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagStrict, err)
		}
	}
	if fs.Changed(FlagConnectWait) {
		if cfg.ConnectWait, err = fs.GetDuration(FlagConnectWait); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagConnectWait, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.Log.Level, err = fs.GetString(FlagLogLevel); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagLogLevel, err)
		}
	}
	if fs.Changed(FlagLogFormat) {
		if cfg.Log.Format, err = fs.GetString(FlagLogFormat); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", FlagLogFormat, err)
		}
	}

	return cfg, nil
}
