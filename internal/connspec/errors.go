// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connspec

import (
	"fmt"

	"github.com/MKhiriev/nats-conn-config/internal/document"
)

// ErrNoServers is returned when the server field is an empty list. It also
// matches document.ErrDocumentMalformed.
var ErrNoServers = fmt.Errorf("%w: server list is empty", document.ErrDocumentMalformed)
