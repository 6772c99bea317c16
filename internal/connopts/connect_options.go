// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package connopts provides ConnectOptions, the builder-style accumulator of
// per-connection tunables that a connection document is mapped onto.
//
// Every builder method mutates the receiver and returns it so calls can be
// chained. Enabling methods (NoEcho, RetryOnInitialConnect, ...) have no
// disabling counterpart: a feature is either left at its default or turned on,
// and turning it on twice is the same as turning it on once.
package connopts

import (
	"time"
)

// Defaults applied by New. They follow the NATS Go client where it has an
// equivalent tunable.
const (
	DefaultPingInterval         = 2 * time.Minute
	DefaultConnectionTimeout    = 2 * time.Second
	DefaultMaxReconnects        = 60
	DefaultSubscriptionCapacity = 64 * 1024
	DefaultClientCapacity       = 2048
	DefaultInboxPrefix          = "_INBOX"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultReadBufferCapacity   = 65535
)

// AuthMethod identifies which credential call, if any, has been applied.
type AuthMethod int

const (
	AuthNone AuthMethod = iota
	AuthUserPassword
	AuthToken
	AuthNkey
	AuthCredentials
)

// String returns the auth_type spelling of the method.
func (m AuthMethod) String() string {
	switch m {
	case AuthNone:
		return "no_auth"
	case AuthUserPassword:
		return "user_password"
	case AuthToken:
		return "token"
	case AuthNkey:
		return "nkey"
	case AuthCredentials:
		return "credential_file"
	default:
		return "unknown"
	}
}

// Settings is a comparable snapshot of every tunable held by ConnectOptions.
// Two ConnectOptions built from the same document have equal Settings.
type Settings struct {
	Name                    string
	PingInterval            time.Duration
	FlushInterval           time.Duration
	NoEcho                  bool
	RetryOnInitialConnect   bool
	MaxReconnects           int
	ConnectionTimeout       time.Duration
	SubscriptionCapacity    int
	ClientCapacity          int
	InboxPrefix             string
	RequestTimeout          time.Duration
	IgnoreDiscoveredServers bool
	RetainServersOrder      bool
	ReadBufferCapacity      uint16

	Auth        AuthMethod
	User        string
	Password    string
	Token       string
	NkeySeed    string
	Credentials string
}

// ConnectOptions accumulates connection tunables.
// The zero value is not ready for use; construct with New.
type ConnectOptions struct {
	settings Settings
}

// New returns ConnectOptions holding the default settings and no credentials.
func New() *ConnectOptions {
	return &ConnectOptions{
		settings: Settings{
			PingInterval:         DefaultPingInterval,
			MaxReconnects:        DefaultMaxReconnects,
			ConnectionTimeout:    DefaultConnectionTimeout,
			SubscriptionCapacity: DefaultSubscriptionCapacity,
			ClientCapacity:       DefaultClientCapacity,
			InboxPrefix:          DefaultInboxPrefix,
			RequestTimeout:       DefaultRequestTimeout,
			ReadBufferCapacity:   DefaultReadBufferCapacity,
			Auth:                 AuthNone,
		},
	}
}

// Settings returns a copy of the accumulated tunables.
func (o *ConnectOptions) Settings() Settings {
	return o.settings
}

// Name sets the connection name reported to the server.
func (o *ConnectOptions) Name(name string) *ConnectOptions {
	o.settings.Name = name
	return o
}

// PingInterval sets the keep-alive ping period.
func (o *ConnectOptions) PingInterval(d time.Duration) *ConnectOptions {
	o.settings.PingInterval = d
	return o
}

// FlushInterval sets the period between flushes of the outbound buffer.
// Zero leaves flushing to the client.
func (o *ConnectOptions) FlushInterval(d time.Duration) *ConnectOptions {
	o.settings.FlushInterval = d
	return o
}

// NoEcho stops the server from delivering messages back to the connection
// that published them.
func (o *ConnectOptions) NoEcho() *ConnectOptions {
	o.settings.NoEcho = true
	return o
}

// RetryOnInitialConnect keeps retrying in the background when the first
// connection attempt fails instead of returning an error.
func (o *ConnectOptions) RetryOnInitialConnect() *ConnectOptions {
	o.settings.RetryOnInitialConnect = true
	return o
}

// MaxReconnects caps reconnect attempts after a connection is lost.
func (o *ConnectOptions) MaxReconnects(n int) *ConnectOptions {
	o.settings.MaxReconnects = n
	return o
}

// ConnectionTimeout bounds a single connection attempt.
func (o *ConnectOptions) ConnectionTimeout(d time.Duration) *ConnectOptions {
	o.settings.ConnectionTimeout = d
	return o
}

// SubscriptionCapacity sets the per-subscription message buffer capacity.
func (o *ConnectOptions) SubscriptionCapacity(n int) *ConnectOptions {
	o.settings.SubscriptionCapacity = n
	return o
}

// ClientCapacity sets the capacity of the outbound command buffer.
func (o *ConnectOptions) ClientCapacity(n int) *ConnectOptions {
	o.settings.ClientCapacity = n
	return o
}

// CustomInboxPrefix replaces the "_INBOX" prefix used for reply subjects.
func (o *ConnectOptions) CustomInboxPrefix(prefix string) *ConnectOptions {
	o.settings.InboxPrefix = prefix
	return o
}

// RequestTimeout sets the default request/reply timeout.
func (o *ConnectOptions) RequestTimeout(d time.Duration) *ConnectOptions {
	o.settings.RequestTimeout = d
	return o
}

// IgnoreDiscoveredServers restricts the client to the configured servers.
func (o *ConnectOptions) IgnoreDiscoveredServers() *ConnectOptions {
	o.settings.IgnoreDiscoveredServers = true
	return o
}

// RetainServersOrder disables randomization of the server list.
func (o *ConnectOptions) RetainServersOrder() *ConnectOptions {
	o.settings.RetainServersOrder = true
	return o
}

// ReadBufferCapacity sets the socket read buffer size in bytes.
func (o *ConnectOptions) ReadBufferCapacity(n uint16) *ConnectOptions {
	o.settings.ReadBufferCapacity = n
	return o
}
