// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connspec

import (
	"math"

	"github.com/MKhiriev/nats-conn-config/internal/auth"
	"github.com/MKhiriev/nats-conn-config/internal/connopts"
	"github.com/MKhiriev/nats-conn-config/models"
)

// optionStep maps one document field onto the accumulator. apply reports
// whether the field was present and a call was made.
type optionStep struct {
	field string
	apply func(*models.PlainOptions, *connopts.ConnectOptions) bool
}

// optionSteps is applied in order. retry_on_failed_connect and
// retry_on_initial_connect both enable the same tunable; either one alone is
// enough and applying both is harmless.
var optionSteps = []optionStep{
	{"name", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.Name == nil {
			return false
		}
		co.Name(*p.Name)
		return true
	}},
	{"ping_interval", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.PingInterval == nil {
			return false
		}
		co.PingInterval(p.PingInterval.Std())
		return true
	}},
	{"flush_interval", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.FlushInterval == nil {
			return false
		}
		co.FlushInterval(p.FlushInterval.Std())
		return true
	}},
	{"no_echo", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if !models.IsTrue(p.NoEcho) {
			return false
		}
		co.NoEcho()
		return true
	}},
	{"retry_on_failed_connect", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if !models.IsTrue(p.RetryOnFailedConnect) {
			return false
		}
		co.RetryOnInitialConnect()
		return true
	}},
	{"connection_timeout", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.ConnectionTimeout == nil {
			return false
		}
		co.ConnectionTimeout(p.ConnectionTimeout.Std())
		return true
	}},
	{"subscription_capacity", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.SubscriptionCapacity == nil {
			return false
		}
		co.SubscriptionCapacity(clampInt(*p.SubscriptionCapacity))
		return true
	}},
	{"sender_capacity", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.SenderCapacity == nil {
			return false
		}
		co.ClientCapacity(clampInt(*p.SenderCapacity))
		return true
	}},
	{"inbox_prefix", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.InboxPrefix == nil {
			return false
		}
		co.CustomInboxPrefix(*p.InboxPrefix)
		return true
	}},
	{"request_timeout", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.RequestTimeout == nil {
			return false
		}
		co.RequestTimeout(p.RequestTimeout.Std())
		return true
	}},
	{"retry_on_initial_connect", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if !models.IsTrue(p.RetryOnInitialConnect) {
			return false
		}
		co.RetryOnInitialConnect()
		return true
	}},
	{"ignore_discovered_servers", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if !models.IsTrue(p.IgnoreDiscoveredServers) {
			return false
		}
		co.IgnoreDiscoveredServers()
		return true
	}},
	{"retain_servers_order", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if !models.IsTrue(p.RetainServersOrder) {
			return false
		}
		co.RetainServersOrder()
		return true
	}},
	{"read_buffer_capacity", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.ReadBufferCapacity == nil {
			return false
		}
		co.ReadBufferCapacity(*p.ReadBufferCapacity)
		return true
	}},
	{"max_reconnects", func(p *models.PlainOptions, co *connopts.ConnectOptions) bool {
		if p.MaxReconnects == nil {
			return false
		}
		co.MaxReconnects(clampInt(*p.MaxReconnects))
		return true
	}},
}

func clampInt(v uint) int {
	if v > math.MaxInt {
		return math.MaxInt
	}
	return int(v)
}

// ApplyOptions applies every present field of opts to co in the fixed step
// order and returns co together with the names of the fields that were applied.
// opts is not modified.
func ApplyOptions(opts *models.PlainOptions, co *connopts.ConnectOptions) (*connopts.ConnectOptions, []string) {
	applied := make([]string, 0, len(optionSteps))
	for _, step := range optionSteps {
		if step.apply(opts, co) {
			applied = append(applied, step.field)
		}
	}
	return co, applied
}

// ApplyAuth makes the credential call matching strategy. NoAuth makes none.
func ApplyAuth(strategy auth.Strategy, co *connopts.ConnectOptions) *connopts.ConnectOptions {
	switch s := strategy.(type) {
	case auth.UserPassword:
		co.UserAndPassword(s.User, s.Password)
	case auth.Token:
		co.Token(s.Token)
	case auth.Nkey:
		co.Nkey(s.Seed)
	case auth.CredentialFile:
		co.Credentials(s.Contents)
	}
	return co
}
