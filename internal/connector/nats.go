// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/MKhiriev/nats-conn-config/internal/connspec"
	"github.com/MKhiriev/nats-conn-config/internal/logger"
)

// NATSConnector dials NATS servers with nats.go.
type NATSConnector struct {
	logger *logger.Logger
}

// NewNATSConnector constructs a NATSConnector. Connection state changes are
// logged at info level; a nil logger disables logging.
func NewNATSConnector(log *logger.Logger) *NATSConnector {
	if log == nil {
		log = logger.Nop()
	}
	return &NATSConnector{logger: log}
}

// Connect implements [Connector].
func (c *NATSConnector) Connect(ctx context.Context, spec *connspec.ConnectionSpec) (Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	options := spec.Options()
	opts, err := NatsOptions(options)
	if err != nil {
		return nil, err
	}
	opts = append(opts, c.handlers()...)

	url := strings.Join(spec.Servers(), ",")
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", url, mapNATSError(err))
	}

	return newNATSConn(nc, spec), nil
}

func (c *NATSConnector) handlers() []nats.Option {
	return []nats.Option{
		nats.ConnectHandler(func(nc *nats.Conn) {
			c.logger.Info().Str("server", nc.ConnectedUrlRedacted()).Msg("connected")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			c.logger.Warn().Err(err).Msg("disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			c.logger.Info().Str("server", nc.ConnectedUrlRedacted()).Msg("reconnected")
		}),
		nats.ClosedHandler(func(*nats.Conn) {
			c.logger.Debug().Msg("connection closed")
		}),
	}
}

// natsClient is the part of *nats.Conn used by natsConn.
type natsClient interface {
	IsConnected() bool
	ConnectedUrlRedacted() string
	RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error)
	Drain() error
	Close()
}

type natsConn struct {
	nc             natsClient
	requestTimeout time.Duration
}

// newNATSConn wraps nc; requests without a deadline are bounded by the
// connection spec's request timeout.
func newNATSConn(nc natsClient, spec *connspec.ConnectionSpec) *natsConn {
	options := spec.Options()
	return &natsConn{
		nc:             nc,
		requestTimeout: options.Settings().RequestTimeout,
	}
}

func (c *natsConn) IsConnected() bool {
	return c.nc.IsConnected()
}

func (c *natsConn) ConnectedURL() string {
	return c.nc.ConnectedUrlRedacted()
}

func (c *natsConn) Request(ctx context.Context, subject string, data []byte) (*nats.Msg, error) {
	if _, ok := ctx.Deadline(); !ok && c.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.requestTimeout)
		defer cancel()
	}

	msg, err := c.nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", subject, mapNATSError(err))
	}
	return msg, nil
}

func (c *natsConn) Drain() error {
	return mapNATSError(c.nc.Drain())
}

func (c *natsConn) Close() {
	c.nc.Close()
}
