// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nats-conn-config/internal/connopts"
	"github.com/MKhiriev/nats-conn-config/internal/connspec"
)

func TestConnect_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	spec := connspec.NewConnectionSpec(connopts.New(), []string{"nats://127.0.0.1:4222"})

	conn, err := NewNATSConnector(nil).Connect(ctx, spec)

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConnect_InvalidCredentialsBeforeDial(t *testing.T) {
	spec := connspec.NewConnectionSpec(connopts.New().Nkey("bogus"), []string{"nats://127.0.0.1:1"})

	conn, err := NewNATSConnector(nil).Connect(context.Background(), spec)

	assert.Nil(t, conn)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestConnect_UnreachableServer(t *testing.T) {
	co := connopts.New().ConnectionTimeout(200 * time.Millisecond)
	spec := connspec.NewConnectionSpec(co, []string{"nats://127.0.0.1:1"})

	conn, err := NewNATSConnector(nil).Connect(context.Background(), spec)

	assert.Nil(t, conn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nats://127.0.0.1:1")
}

func TestMapNATSError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"authorization", nats.ErrAuthorization, ErrUnauthorized},
		{"auth expired", nats.ErrAuthExpired, ErrUnauthorized},
		{"timeout", nats.ErrTimeout, ErrTimeout},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), ErrTimeout},
		{"no responders", nats.ErrNoResponders, ErrNoResponders},
		{"closed", nats.ErrConnectionClosed, ErrConnectionClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapNATSError(tt.in)

			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.in)
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapNATSError(nil))
	})
	t.Run("other errors pass through", func(t *testing.T) {
		other := errors.New("other")
		assert.Same(t, other, mapNATSError(other))
	})
}

// ── natsConn ──────────────────────────────────────────────────────────────────

type fakeClient struct {
	connected bool
	url       string
	reply     *nats.Msg
	err       error

	deadline    time.Time
	hasDeadline bool
	subject     string
	data        []byte
	drained     bool
	closed      bool
}

func (f *fakeClient) IsConnected() bool            { return f.connected }
func (f *fakeClient) ConnectedUrlRedacted() string { return f.url }
func (f *fakeClient) Drain() error                 { f.drained = true; return f.err }
func (f *fakeClient) Close()                       { f.closed = true }

func (f *fakeClient) RequestWithContext(ctx context.Context, subject string, data []byte) (*nats.Msg, error) {
	f.deadline, f.hasDeadline = ctx.Deadline()
	f.subject, f.data = subject, data
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func specWithRequestTimeout(d time.Duration) *connspec.ConnectionSpec {
	return connspec.NewConnectionSpec(connopts.New().RequestTimeout(d), []string{"nats://127.0.0.1:4222"})
}

func TestNatsConn_Request_DefaultDeadlineFromRequestTimeout(t *testing.T) {
	fc := &fakeClient{reply: &nats.Msg{Data: []byte("pong")}}
	conn := newNATSConn(fc, specWithRequestTimeout(3*time.Second))

	start := time.Now()
	msg, err := conn.Request(context.Background(), "svc.ping", []byte("hi"))

	require.NoError(t, err)
	assert.Equal(t, []byte("pong"), msg.Data)
	assert.Equal(t, "svc.ping", fc.subject)
	assert.Equal(t, []byte("hi"), fc.data)
	require.True(t, fc.hasDeadline)
	assert.WithinDuration(t, start.Add(3*time.Second), fc.deadline, time.Second)
}

func TestNatsConn_Request_DefaultRequestTimeout(t *testing.T) {
	fc := &fakeClient{reply: &nats.Msg{}}
	spec := connspec.NewConnectionSpec(connopts.New(), []string{"nats://127.0.0.1:4222"})
	conn := newNATSConn(fc, spec)

	start := time.Now()
	_, err := conn.Request(context.Background(), "svc.ping", nil)

	require.NoError(t, err)
	require.True(t, fc.hasDeadline)
	assert.WithinDuration(t, start.Add(connopts.DefaultRequestTimeout), fc.deadline, time.Second)
}

func TestNatsConn_Request_KeepsCallerDeadline(t *testing.T) {
	fc := &fakeClient{reply: &nats.Msg{}}
	conn := newNATSConn(fc, specWithRequestTimeout(3*time.Second))

	want := time.Now().Add(time.Hour)
	ctx, cancel := context.WithDeadline(context.Background(), want)
	defer cancel()

	_, err := conn.Request(ctx, "svc.ping", nil)

	require.NoError(t, err)
	require.True(t, fc.hasDeadline)
	assert.True(t, want.Equal(fc.deadline))
}

func TestNatsConn_Request_ZeroTimeoutAddsNoDeadline(t *testing.T) {
	fc := &fakeClient{reply: &nats.Msg{}}
	conn := newNATSConn(fc, specWithRequestTimeout(0))

	_, err := conn.Request(context.Background(), "svc.ping", nil)

	require.NoError(t, err)
	assert.False(t, fc.hasDeadline)
}

func TestNatsConn_Request_MapsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"no responders", nats.ErrNoResponders, ErrNoResponders},
		{"nats timeout", nats.ErrTimeout, ErrTimeout},
		{"deadline", context.DeadlineExceeded, ErrTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := newNATSConn(&fakeClient{err: tt.in}, specWithRequestTimeout(time.Second))

			msg, err := conn.Request(context.Background(), "svc.ping", nil)

			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "svc.ping")
		})
	}
}

func TestNatsConn_Delegates(t *testing.T) {
	fc := &fakeClient{connected: true, url: "nats://127.0.0.1:4222"}
	conn := newNATSConn(fc, specWithRequestTimeout(time.Second))

	assert.True(t, conn.IsConnected())
	assert.Equal(t, "nats://127.0.0.1:4222", conn.ConnectedURL())
	require.NoError(t, conn.Drain())
	conn.Close()

	assert.True(t, fc.drained)
	assert.True(t, fc.closed)
}

func TestNatsConn_Drain_MapsErrors(t *testing.T) {
	conn := newNATSConn(&fakeClient{err: nats.ErrConnectionClosed}, specWithRequestTimeout(time.Second))

	assert.ErrorIs(t, conn.Drain(), ErrConnectionClosed)
}
