// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"
	"time"

	"github.com/MKhiriev/nats-conn-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func durationPtr(d time.Duration) *models.Duration {
	v := models.Duration(d)
	return &v
}

func validPlainOptions() models.PlainOptions {
	return models.PlainOptions{
		Server:       models.SingleServer("nats://localhost:4222"),
		PingInterval: durationPtr(time.Minute),
	}
}

func TestNewPlainOptionsValidator(t *testing.T) {
	v := NewPlainOptionsValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewPlainOptionsValidator()
	opts := validPlainOptions()

	assert.NoError(t, v.Validate(opts))
	assert.NoError(t, v.Validate(&opts))
	assert.ErrorIs(t, v.Validate((*models.PlainOptions)(nil)), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate("server"), ErrUnsupportedType)
}

func TestValidate_MissingServer(t *testing.T) {
	v := NewPlainOptionsValidator()
	opts := validPlainOptions()
	opts.Server = models.ServerAddress{}

	assert.ErrorIs(t, v.Validate(opts), ErrMissingServer)
	assert.NoError(t, v.Validate(opts, FieldDurations))
}

// TestValidate_EmptyServerListIsNotMissing verifies that an empty list is
// left for the server address resolver to reject.
func TestValidate_EmptyServerListIsNotMissing(t *testing.T) {
	v := NewPlainOptionsValidator()
	opts := validPlainOptions()
	opts.Server = models.ServerList()

	assert.NoError(t, v.Validate(opts))
}

func TestValidate_NegativeDuration(t *testing.T) {
	v := NewPlainOptionsValidator()

	tests := []struct {
		name string
		set  func(*models.PlainOptions)
		key  string
	}{
		{"ping", func(o *models.PlainOptions) { o.PingInterval = durationPtr(-time.Second) }, "ping_interval"},
		{"flush", func(o *models.PlainOptions) { o.FlushInterval = durationPtr(-1) }, "flush_interval"},
		{"connect", func(o *models.PlainOptions) { o.ConnectionTimeout = durationPtr(-time.Minute) }, "connection_timeout"},
		{"request", func(o *models.PlainOptions) { o.RequestTimeout = durationPtr(-time.Hour) }, "request_timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := validPlainOptions()
			tt.set(&opts)

			err := v.Validate(opts)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrNegativeDuration)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_ZeroDurationAllowed(t *testing.T) {
	v := NewPlainOptionsValidator()
	opts := validPlainOptions()
	opts.RequestTimeout = durationPtr(0)

	assert.NoError(t, v.Validate(opts))
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewPlainOptionsValidator()
	assert.ErrorIs(t, v.Validate(validPlainOptions(), "tls"), ErrUnknownField)
}
