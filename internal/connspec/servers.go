// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connspec

import (
	"fmt"

	"github.com/MKhiriev/nats-conn-config/internal/document"
	"github.com/MKhiriev/nats-conn-config/internal/validators"
	"github.com/MKhiriev/nats-conn-config/models"
)

// ResolveServers normalizes the server field into an ordered, non-empty list.
//
// A single address becomes a one-element list; a list is copied as authored,
// without deduplication or syntax checks. An empty list fails with
// ErrNoServers and an absent field with validators.ErrMissingServer; both
// match document.ErrDocumentMalformed.
func ResolveServers(addr models.ServerAddress) ([]string, error) {
	if single, ok := addr.Single(); ok {
		return []string{single}, nil
	}

	list, ok := addr.List()
	if !ok {
		return nil, fmt.Errorf("%w: %w", document.ErrDocumentMalformed, validators.ErrMissingServer)
	}
	if len(list) == 0 {
		return nil, ErrNoServers
	}

	return list, nil
}
