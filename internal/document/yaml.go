// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/nats-conn-config/models"
)

func decodeYAML(r io.Reader, strict bool) (*models.PlainOptions, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(strict)

	var opts models.PlainOptions
	if err := decoder.Decode(&opts); err != nil {
		// an empty document decodes to nothing; the validator reports the missing server
		if errors.Is(err, io.EOF) {
			return &opts, nil
		}
		return nil, fmt.Errorf("%w: error decoding yaml: %w", ErrDocumentMalformed, err)
	}

	// a connection document holds exactly one yaml document
	var extra yaml.Node
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected second yaml document at line %d", ErrDocumentMalformed, extra.Line)
		}
		return nil, fmt.Errorf("%w: error decoding yaml: %w", ErrDocumentMalformed, err)
	}

	return &opts, nil
}
