// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("connection unauthorized")
	ErrTimeout            = errors.New("timeout")
	ErrNoResponders       = errors.New("no responders")
	ErrConnectionClosed   = errors.New("connection closed")
)
