// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/nats-conn-config/models"
)

// Field name constants accepted by PlainOptionsValidator.Validate.
const (
	// FieldServer requires the "server" key to be present and non-null.
	FieldServer = "server"

	// FieldDurations rejects negative values in every duration field.
	FieldDurations = "durations"
)

// PlainOptionsValidator implements Validator for models.PlainOptions.
//
// It only checks document structure. Auth dependencies between fields and
// the emptiness of the server list are resolved later, by the auth resolver
// and the server address resolver respectively.
type PlainOptionsValidator struct{}

// NewPlainOptionsValidator constructs a PlainOptionsValidator and returns it
// as the Validator interface.
func NewPlainOptionsValidator() Validator {
	return &PlainOptionsValidator{}
}

// Validate accepts models.PlainOptions or *models.PlainOptions.
func (v *PlainOptionsValidator) Validate(obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlainOptions:
		return v.validatePlainOptions(&value, fields...)
	case *models.PlainOptions:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validatePlainOptions(value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *PlainOptionsValidator) validatePlainOptions(opts *models.PlainOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldServer, FieldDurations}
	}

	for _, f := range fields {
		switch f {
		case FieldServer:
			if !opts.Server.IsSet() {
				return ErrMissingServer
			}
		case FieldDurations:
			durations := []struct {
				key   string
				value *models.Duration
			}{
				{"ping_interval", opts.PingInterval},
				{"flush_interval", opts.FlushInterval},
				{"connection_timeout", opts.ConnectionTimeout},
				{"request_timeout", opts.RequestTimeout},
			}
			for _, d := range durations {
				if d.value != nil && *d.value < 0 {
					return fmt.Errorf("%s: %w", d.key, ErrNegativeDuration)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
