// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"fmt"

	"github.com/nats-io/jwt/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"

	"github.com/MKhiriev/nats-conn-config/internal/connopts"
)

// NatsOptions translates co into nats.go connect options.
//
// Flush interval, client capacity and read buffer capacity have no nats.go
// counterpart and are not translated. The request timeout is applied per
// request by Conn.
func NatsOptions(co connopts.ConnectOptions) ([]nats.Option, error) {
	s := co.Settings()

	opts := []nats.Option{
		nats.PingInterval(s.PingInterval),
		nats.Timeout(s.ConnectionTimeout),
		nats.MaxReconnects(s.MaxReconnects),
		nats.SyncQueueLen(s.SubscriptionCapacity),
		nats.CustomInboxPrefix(s.InboxPrefix),
	}
	if s.Name != "" {
		opts = append(opts, nats.Name(s.Name))
	}
	if s.NoEcho {
		opts = append(opts, nats.NoEcho())
	}
	if s.RetryOnInitialConnect {
		opts = append(opts, nats.RetryOnFailedConnect(true))
	}
	if s.IgnoreDiscoveredServers {
		opts = append(opts, nats.IgnoreDiscoveredServers())
	}
	if s.RetainServersOrder {
		opts = append(opts, nats.DontRandomize())
	}

	credential, err := credentialOption(s)
	if err != nil {
		return nil, err
	}
	if credential != nil {
		opts = append(opts, credential)
	}

	return opts, nil
}

func credentialOption(s connopts.Settings) (nats.Option, error) {
	switch s.Auth {
	case connopts.AuthUserPassword:
		return nats.UserInfo(s.User, s.Password), nil
	case connopts.AuthToken:
		return nats.Token(s.Token), nil
	case connopts.AuthNkey:
		kp, err := nkeys.FromSeed([]byte(s.NkeySeed))
		if err != nil {
			return nil, fmt.Errorf("%w: nkey seed: %w", ErrInvalidCredentials, err)
		}
		pub, err := kp.PublicKey()
		if err != nil {
			return nil, fmt.Errorf("%w: nkey public key: %w", ErrInvalidCredentials, err)
		}
		return nats.Nkey(pub, kp.Sign), nil
	case connopts.AuthCredentials:
		return credsOption([]byte(s.Credentials))
	default:
		return nil, nil
	}
}

func credsOption(contents []byte) (nats.Option, error) {
	userJWT, err := jwt.ParseDecoratedJWT(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: user jwt: %w", ErrInvalidCredentials, err)
	}
	if _, err := jwt.DecodeUserClaims(userJWT); err != nil {
		return nil, fmt.Errorf("%w: user jwt: %w", ErrInvalidCredentials, err)
	}

	kp, err := jwt.ParseDecoratedUserNKey(contents)
	if err != nil {
		return nil, fmt.Errorf("%w: user seed: %w", ErrInvalidCredentials, err)
	}
	seed, err := kp.Seed()
	if err != nil {
		return nil, fmt.Errorf("%w: user seed: %w", ErrInvalidCredentials, err)
	}

	return nats.UserJWTAndSeed(userJWT, string(seed)), nil
}
