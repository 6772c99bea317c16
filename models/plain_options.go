// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthType is the value of the "auth_type" discriminator field.
type AuthType string

const (
	// AuthTypeNoAuth selects an anonymous connection.
	AuthTypeNoAuth AuthType = "no_auth"

	// AuthTypeUserPassword selects user/password authentication and
	// requires both "user" and "pass".
	AuthTypeUserPassword AuthType = "user_password"

	// AuthTypeToken selects token authentication and requires "token".
	AuthTypeToken AuthType = "token"

	// AuthTypeNkey selects nkey challenge signing and requires the seed in "nkey".
	AuthTypeNkey AuthType = "nkey"

	// AuthTypeCredentialFile selects a decorated .creds file and requires
	// "credential_file".
	AuthTypeCredentialFile AuthType = "credential_file"
)

// PlainOptions is the loosely validated form of a connection document.
//
// Every field except Server is optional: a nil pointer means the key was
// absent (or null) in the document. A PlainOptions value is produced once per
// load and is read-only afterwards.
type PlainOptions struct {
	// Server is the single address or ordered address list to connect to.
	Server ServerAddress `yaml:"server" json:"server"`

	// Name is the connection name reported to the server.
	Name *string `yaml:"name" json:"name"`

	// PingInterval is the keep-alive ping period.
	PingInterval *Duration `yaml:"ping_interval" json:"ping_interval"`

	// FlushInterval is the period between flushes of the outbound buffer.
	FlushInterval *Duration `yaml:"flush_interval" json:"flush_interval"`

	// NoEcho suppresses delivery of messages published on the same connection.
	NoEcho *bool `yaml:"no_echo" json:"no_echo"`

	// RetryOnFailedConnect is an alias of RetryOnInitialConnect kept for
	// documents written against the Go client's option name.
	RetryOnFailedConnect *bool `yaml:"retry_on_failed_connect" json:"retry_on_failed_connect"`

	// MaxReconnects caps the number of reconnect attempts.
	MaxReconnects *uint `yaml:"max_reconnects" json:"max_reconnects"`

	// ConnectionTimeout bounds the initial connection attempt.
	ConnectionTimeout *Duration `yaml:"connection_timeout" json:"connection_timeout"`

	// SubscriptionCapacity is the per-subscription message buffer capacity.
	SubscriptionCapacity *uint `yaml:"subscription_capacity" json:"subscription_capacity"`

	// SenderCapacity is the outbound client command buffer capacity.
	SenderCapacity *uint `yaml:"sender_capacity" json:"sender_capacity"`

	// InboxPrefix replaces the default "_INBOX" reply subject prefix.
	InboxPrefix *string `yaml:"inbox_prefix" json:"inbox_prefix"`

	// RequestTimeout is the default request/reply timeout.
	RequestTimeout *Duration `yaml:"request_timeout" json:"request_timeout"`

	// RetryOnInitialConnect keeps retrying when the first connect fails.
	RetryOnInitialConnect *bool `yaml:"retry_on_initial_connect" json:"retry_on_initial_connect"`

	// IgnoreDiscoveredServers disables use of servers advertised by the cluster.
	IgnoreDiscoveredServers *bool `yaml:"ignore_discovered_servers" json:"ignore_discovered_servers"`

	// RetainServersOrder disables randomization of the server list.
	RetainServersOrder *bool `yaml:"retain_servers_order" json:"retain_servers_order"`

	// ReadBufferCapacity is the socket read buffer size in bytes.
	ReadBufferCapacity *uint16 `yaml:"read_buffer_capacity" json:"read_buffer_capacity"`

	// AuthType selects which of the auth fields below are consulted.
	AuthType *string `yaml:"auth_type" json:"auth_type"`

	// User is the user name for AuthTypeUserPassword.
	User *string `yaml:"user" json:"user"`

	// Pass is the password for AuthTypeUserPassword.
	Pass *string `yaml:"pass" json:"pass"`

	// Token is the token for AuthTypeToken.
	Token *string `yaml:"token" json:"token"`

	// Nkey is the nkey seed for AuthTypeNkey.
	Nkey *string `yaml:"nkey" json:"nkey"`

	// CredentialFile is the path of the .creds file for AuthTypeCredentialFile.
	CredentialFile *string `yaml:"credential_file" json:"credential_file"`
}

// IsTrue reports whether an optional flag is present and set to true.
// Absent and false are equivalent.
func IsTrue(flag *bool) bool {
	return flag != nil && *flag
}
