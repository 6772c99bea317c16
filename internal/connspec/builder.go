// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connspec turns a connection document into a [ConnectionSpec].
//
// A build runs four steps in order and stops at the first failure:
//  1. load and decode the document (DocumentLoader);
//  2. resolve the server list (ResolveServers);
//  3. apply the optional fields to a fresh connopts.ConnectOptions (ApplyOptions);
//  4. resolve the auth strategy and apply its credential call (auth.Resolve, ApplyAuth).
//
// No partial spec is ever returned and nothing is cached between builds.
package connspec

import (
	"fmt"

	"github.com/MKhiriev/nats-conn-config/internal/auth"
	"github.com/MKhiriev/nats-conn-config/internal/connopts"
	"github.com/MKhiriev/nats-conn-config/internal/logger"
)

// Builder assembles connection specs from documents on disk.
type Builder struct {
	loader DocumentLoader
	logger *logger.Logger
}

// NewBuilder constructs a Builder. A nil logger disables logging.
func NewBuilder(loader DocumentLoader, log *logger.Logger) *Builder {
	if log == nil {
		log = logger.Nop()
	}
	return &Builder{
		loader: loader,
		logger: log,
	}
}

// Build loads the document at path and resolves it into a ConnectionSpec.
func (b *Builder) Build(path string) (*ConnectionSpec, error) {
	record, err := b.loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading connection document: %w", err)
	}

	servers, err := ResolveServers(record.Server)
	if err != nil {
		return nil, fmt.Errorf("error resolving servers: %w", err)
	}

	options, applied := ApplyOptions(record, connopts.New())

	strategy, err := auth.Resolve(record)
	if err != nil {
		return nil, fmt.Errorf("error resolving auth: %w", err)
	}
	ApplyAuth(strategy, options)

	b.logger.Debug().
		Str("document", path).
		Int("servers", len(servers)).
		Strs("applied", applied).
		Stringer("auth", strategy).
		Msg("connection spec built")

	return NewConnectionSpec(options, servers), nil
}
