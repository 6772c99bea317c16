// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDuration is returned when a duration field has an unsupported shape.
var ErrInvalidDuration = errors.New("invalid duration")

// Duration is a time.Duration that can be authored in three ways:
//   - a Go duration string ("30s", "1m30s");
//   - a bare number of seconds (30, 0.25);
//   - an object with whole seconds and nanoseconds ({secs: 1, nanos: 500}).
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// String returns the Go duration representation.
func (d Duration) String() string {
	return time.Duration(d).String()
}

type secsNanos struct {
	Secs  int64 `yaml:"secs" json:"secs"`
	Nanos int64 `yaml:"nanos" json:"nanos"`
}

func (s secsNanos) duration() (Duration, error) {
	if s.Nanos < 0 || s.Nanos >= int64(time.Second) {
		return 0, fmt.Errorf("%w: nanos must be in [0, 1e9), got %d", ErrInvalidDuration, s.Nanos)
	}
	const maxSecs, maxNanos = math.MaxInt64 / int64(time.Second), math.MaxInt64 % int64(time.Second)
	if s.Secs > maxSecs || s.Secs < math.MinInt64/int64(time.Second) || (s.Secs == maxSecs && s.Nanos > maxNanos) {
		return 0, fmt.Errorf("%w: %d seconds and %d nanoseconds overflows", ErrInvalidDuration, s.Secs, s.Nanos)
	}
	return Duration(time.Duration(s.Secs)*time.Second + time.Duration(s.Nanos)), nil
}

func parseDurationText(s string) (Duration, error) {
	if seconds, err := strconv.ParseFloat(s, 64); err == nil {
		return secondsToDuration(seconds)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDuration, err)
	}
	return Duration(d), nil
}

func secondsToDuration(seconds float64) (Duration, error) {
	ns := seconds * float64(time.Second)
	if math.IsNaN(ns) || ns > math.MaxInt64 || ns < math.MinInt64 {
		return 0, fmt.Errorf("%w: %v seconds is out of range", ErrInvalidDuration, seconds)
	}
	return Duration(time.Duration(ns)), nil
}

// UnmarshalYAML decodes any of the supported duration shapes.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := parseDurationText(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*d = parsed
		return nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(value.Content); i += 2 {
			if key := value.Content[i].Value; key != "secs" && key != "nanos" {
				return fmt.Errorf("%w: line %d: unknown key %q, want secs and nanos", ErrInvalidDuration, value.Content[i].Line, key)
			}
		}
		var raw secsNanos
		if err := value.Decode(&raw); err != nil {
			return err
		}
		parsed, err := raw.duration()
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidDuration, value.Line)
	}
}

// UnmarshalJSON decodes any of the supported duration shapes.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		parsed, err := secondsToDuration(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := parseDurationText(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case map[string]any:
		var raw secsNanos
		decoder := json.NewDecoder(bytes.NewReader(b))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDuration, err)
		}
		parsed, err := raw.duration()
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return ErrInvalidDuration
	}
}

// MarshalJSON encodes the duration as a Go duration string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
