// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connspec

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/nats-conn-config/internal/connopts"
)

// ConnectionSpec is the resolved, immutable result of a build: the configured
// options plus the ordered server list. Accessors return copies, so a spec
// can be handed to several goroutines.
type ConnectionSpec struct {
	options connopts.ConnectOptions
	servers []string
}

// NewConnectionSpec copies options and servers into a new spec.
func NewConnectionSpec(options *connopts.ConnectOptions, servers []string) *ConnectionSpec {
	s := make([]string, len(servers))
	copy(s, servers)
	return &ConnectionSpec{
		options: *options,
		servers: s,
	}
}

// Options returns a copy of the configured options.
func (c *ConnectionSpec) Options() connopts.ConnectOptions {
	return c.options
}

// Servers returns a copy of the server list in authored order.
func (c *ConnectionSpec) Servers() []string {
	s := make([]string, len(c.servers))
	copy(s, c.servers)
	return s
}

// MarshalZerologObject logs the servers and the redacted options.
func (c *ConnectionSpec) MarshalZerologObject(e *zerolog.Event) {
	e.Strs("servers", c.servers).Object("options", &c.options)
}
