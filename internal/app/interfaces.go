// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "github.com/MKhiriev/nats-conn-config/internal/connspec"

//go:generate mockgen -source=interfaces.go -destination=../mock/spec_builder_mock.go -package=mock

// SpecBuilder resolves a connection document into a ConnectionSpec.
// *connspec.Builder implements it.
type SpecBuilder interface {
	Build(path string) (*connspec.ConnectionSpec, error)
}
