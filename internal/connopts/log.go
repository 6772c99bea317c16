// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connopts

import "github.com/rs/zerolog"

const redacted = "[REDACTED]"

var _ zerolog.LogObjectMarshaler = (*ConnectOptions)(nil)

// MarshalZerologObject writes the tunables as log fields. Secrets are replaced
// by a marker; the user name is kept.
func (o *ConnectOptions) MarshalZerologObject(e *zerolog.Event) {
	s := o.settings
	e.Str("name", s.Name).
		Dur("ping_interval", s.PingInterval).
		Dur("flush_interval", s.FlushInterval).
		Bool("no_echo", s.NoEcho).
		Bool("retry_on_initial_connect", s.RetryOnInitialConnect).
		Int("max_reconnects", s.MaxReconnects).
		Dur("connection_timeout", s.ConnectionTimeout).
		Int("subscription_capacity", s.SubscriptionCapacity).
		Int("client_capacity", s.ClientCapacity).
		Str("inbox_prefix", s.InboxPrefix).
		Dur("request_timeout", s.RequestTimeout).
		Bool("ignore_discovered_servers", s.IgnoreDiscoveredServers).
		Bool("retain_servers_order", s.RetainServersOrder).
		Uint16("read_buffer_capacity", s.ReadBufferCapacity).
		Stringer("auth", s.Auth)

	switch s.Auth {
	case AuthUserPassword:
		e.Str("user", s.User).Str("pass", redacted)
	case AuthToken:
		e.Str("token", redacted)
	case AuthNkey:
		e.Str("nkey", redacted)
	case AuthCredentials:
		e.Str("credentials", redacted)
	}
}
