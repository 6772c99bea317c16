// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrNoDocumentPath indicates that neither -c nor NATSCONF_CONFIG named
	// a connection document.
	ErrNoDocumentPath = errors.New("no connection document path")
	// ErrInvalidLogLevel indicates a log level zerolog does not recognize.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates a log format other than console or json.
	ErrInvalidLogFormat = errors.New("invalid log format")
	// ErrInvalidConnectWait indicates a negative connect wait.
	ErrInvalidConnectWait = errors.New("invalid connect wait")
)
