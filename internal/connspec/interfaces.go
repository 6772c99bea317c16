// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connspec

import "github.com/MKhiriev/nats-conn-config/models"

// DocumentLoader reads a connection document into a plain options record.
// *document.FileLoader implements it.
type DocumentLoader interface {
	// Load returns the decoded, structurally valid record stored at path.
	Load(path string) (*models.PlainOptions, error)
}
