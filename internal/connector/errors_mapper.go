// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"
)

func mapNATSError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, nats.ErrAuthorization), errors.Is(err, nats.ErrAuthExpired), errors.Is(err, nats.ErrAuthRevoked):
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	case errors.Is(err, nats.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, nats.ErrNoResponders):
		return fmt.Errorf("%w: %w", ErrNoResponders, err)
	case errors.Is(err, nats.ErrConnectionClosed):
		return fmt.Errorf("%w: %w", ErrConnectionClosed, err)
	default:
		return err
	}
}
