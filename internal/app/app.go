// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app implements the natsconf use cases on top of a SpecBuilder and a
// connector.Connector.
//
// Check resolves a document and reports the redacted result. Connect goes one
// step further: it dials the resolved servers, waits until the connection is
// up and then drains it. Request also sends one request and returns the reply.
//
// Every use case logs through the logger attached to its context
// (logger.WithContext); without one nothing is logged.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/nats-conn-config/internal/connector"
	"github.com/MKhiriev/nats-conn-config/internal/connspec"
	"github.com/MKhiriev/nats-conn-config/internal/logger"
)

const connectPollInterval = 50 * time.Millisecond

// App wires a SpecBuilder to a Connector.
type App struct {
	builder   SpecBuilder
	connector connector.Connector
}

// New constructs an App.
func New(builder SpecBuilder, conn connector.Connector) *App {
	return &App{
		builder:   builder,
		connector: conn,
	}
}

// Check builds the spec for the document at path and logs it with secrets
// redacted.
func (a *App) Check(ctx context.Context, path string) (*connspec.ConnectionSpec, error) {
	spec, err := a.builder.Build(path)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info().Str("document", path).Object("spec", spec).Msg(MsgDocumentValid)
	return spec, nil
}

// Connect builds the spec for path, connects and waits up to wait for the
// connection to be established before draining it. A non-positive wait
// only accepts a connection that is up when Connect returns.
func (a *App) Connect(ctx context.Context, path string, wait time.Duration) error {
	conn, err := a.open(ctx, path, wait)
	if err != nil {
		return err
	}

	return drain(ctx, conn)
}

// Request connects like Connect, sends data on subject and returns the reply
// payload. Unless ctx carries a deadline the document's request_timeout
// bounds the wait for the reply.
func (a *App) Request(ctx context.Context, path string, wait time.Duration, subject string, data []byte) ([]byte, error) {
	conn, err := a.open(ctx, path, wait)
	if err != nil {
		return nil, err
	}

	msg, err := conn.Request(ctx, subject, data)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error requesting %s: %w", subject, err)
	}
	logger.FromContext(ctx).Info().Str("subject", subject).Int("bytes", len(msg.Data)).Msg(MsgReplyReceived)

	if err := drain(ctx, conn); err != nil {
		return nil, err
	}
	return msg.Data, nil
}

func (a *App) open(ctx context.Context, path string, wait time.Duration) (connector.Conn, error) {
	spec, err := a.builder.Build(path)
	if err != nil {
		return nil, err
	}

	conn, err := a.connector.Connect(ctx, spec)
	if err != nil {
		return nil, err
	}

	if err := waitConnected(ctx, conn, wait); err != nil {
		conn.Close()
		return nil, err
	}
	logger.FromContext(ctx).Info().Str("server", conn.ConnectedURL()).Msg(MsgConnected)

	return conn, nil
}

func drain(ctx context.Context, conn connector.Conn) error {
	if err := conn.Drain(); err != nil {
		return fmt.Errorf("error draining connection: %w", err)
	}
	logger.FromContext(ctx).Debug().Msg(MsgDrained)
	return nil
}

func waitConnected(ctx context.Context, conn connector.Conn, wait time.Duration) error {
	if conn.IsConnected() {
		return nil
	}
	if wait <= 0 {
		return ErrNotConnected
	}

	logger.FromContext(ctx).Info().Dur("wait", wait).Msg(MsgWaitingForConnection)

	timer := time.NewTimer(wait)
	defer timer.Stop()
	ticker := time.NewTicker(connectPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return fmt.Errorf("%w after %s", ErrNotConnected, wait)
		case <-ticker.C:
			if conn.IsConnected() {
				return nil
			}
		}
	}
}
