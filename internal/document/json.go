// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/nats-conn-config/models"
)

func decodeJSON(r io.Reader, strict bool) (*models.PlainOptions, error) {
	decoder := json.NewDecoder(r)
	if strict {
		decoder.DisallowUnknownFields()
	}

	var opts models.PlainOptions
	if err := decoder.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return &opts, nil
		}
		return nil, fmt.Errorf("%w: error decoding json: %w", ErrDocumentMalformed, err)
	}

	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected data after the top-level json value", ErrDocumentMalformed)
		}
		return nil, fmt.Errorf("%w: error decoding json: %w", ErrDocumentMalformed, err)
	}

	return &opts, nil
}
