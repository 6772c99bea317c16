// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type durationHolder struct {
	D *Duration `yaml:"d" json:"d"`
}

func TestDuration_YAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want time.Duration
	}{
		{name: "go string", doc: `d: 1m30s`, want: 90 * time.Second},
		{name: "quoted string", doc: `d: "250ms"`, want: 250 * time.Millisecond},
		{name: "integer seconds", doc: `d: 30`, want: 30 * time.Second},
		{name: "fractional seconds", doc: `d: 0.5`, want: 500 * time.Millisecond},
		{name: "secs and nanos", doc: "d:\n  secs: 2\n  nanos: 5000000\n", want: 2*time.Second + 5*time.Millisecond},
		{name: "secs only", doc: "d: {secs: 10}", want: 10 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h durationHolder
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &h))
			require.NotNil(t, h.D)
			assert.Equal(t, tt.want, h.D.Std())
		})
	}
}

func TestDuration_YAML_Null(t *testing.T) {
	var h durationHolder
	require.NoError(t, yaml.Unmarshal([]byte(`d: ~`), &h))
	assert.Nil(t, h.D)
}

func TestDuration_YAML_Invalid(t *testing.T) {
	for _, doc := range []string{
		`d: soon`,
		"d: {secs: 1, nanos: 2000000000}",
		"d: [1, 2]",
		"d: {sec: 5}",
		"d: {secs: 1, millis: 5}",
		"d: {secs: 9223372036, nanos: 999999999}",
		"d: {secs: 9223372037}",
	} {
		var h durationHolder
		err := yaml.Unmarshal([]byte(doc), &h)
		require.Error(t, err, doc)
		assert.ErrorIs(t, err, ErrInvalidDuration, doc)
	}
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		body string
		want time.Duration
	}{
		{body: `{"d":"2s"}`, want: 2 * time.Second},
		{body: `{"d":3}`, want: 3 * time.Second},
		{body: `{"d":{"secs":1,"nanos":1}}`, want: time.Second + 1},
	}
	for _, tt := range tests {
		var h durationHolder
		require.NoError(t, json.Unmarshal([]byte(tt.body), &h), tt.body)
		require.NotNil(t, h.D)
		assert.Equal(t, tt.want, h.D.Std(), tt.body)
	}
}

func TestDuration_JSON_Invalid(t *testing.T) {
	var h durationHolder
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"d":true}`), &h), ErrInvalidDuration)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"d":"later"}`), &h), ErrInvalidDuration)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"d":{"sec":5}}`), &h), ErrInvalidDuration)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"d":{"secs":9223372036,"nanos":999999999}}`), &h), ErrInvalidDuration)
}

func TestSecsNanos_Bounds(t *testing.T) {
	largest, err := secsNanos{Secs: 9223372036, Nanos: 854775807}.duration()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxInt64), largest.Std())

	_, err = secsNanos{Secs: 9223372036, Nanos: 854775808}.duration()
	assert.ErrorIs(t, err, ErrInvalidDuration)

	smallest, err := secsNanos{Secs: -9223372036}.duration()
	require.NoError(t, err)
	assert.Equal(t, -9223372036*time.Second, smallest.Std())
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
