// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connector opens NATS connections described by a
// [connspec.ConnectionSpec].
//
// The spec's tunables are translated to nats.go options by [NatsOptions].
// Credentials stored in the spec (nkey seeds, decorated .creds contents) are
// parsed here, at connect time, so a malformed secret surfaces as
// [ErrInvalidCredentials] before any dial is attempted.
package connector

import (
	"context"

	"github.com/nats-io/nats.go"

	"github.com/MKhiriev/nats-conn-config/internal/connspec"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connector_mock.go -package=mock

// Connector opens a connection for a resolved spec.
type Connector interface {
	// Connect dials the spec's servers. It returns ctx.Err() without dialing
	// when ctx is already done.
	Connect(ctx context.Context, spec *connspec.ConnectionSpec) (Conn, error)
}

// Conn is an open NATS connection.
type Conn interface {
	// IsConnected reports whether the connection is currently established.
	// With retry-on-initial-connect a fresh Conn may still be reconnecting.
	IsConnected() bool

	// ConnectedURL returns the URL of the server in use, or "" when not
	// connected.
	ConnectedURL() string

	// Request sends data on subject and waits for one reply. Without a
	// deadline on ctx the spec's request timeout applies.
	Request(ctx context.Context, subject string, data []byte) (*nats.Msg, error)

	// Drain flushes pending messages and closes the connection.
	Drain() error

	// Close closes the connection immediately.
	Close()
}
