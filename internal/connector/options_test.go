// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"testing"
	"time"

	"github.com/nats-io/jwt/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nkeys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/nats-conn-config/internal/connopts"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func applyOptions(t *testing.T, co *connopts.ConnectOptions) nats.Options {
	t.Helper()
	opts, err := NatsOptions(*co)
	require.NoError(t, err)

	o := nats.GetDefaultOptions()
	for _, opt := range opts {
		require.NoError(t, opt(&o))
	}
	return o
}

func userCreds(t *testing.T) (creds []byte, userJWT string, userPub string) {
	t.Helper()
	akp, err := nkeys.CreateAccount()
	require.NoError(t, err)
	ukp, err := nkeys.CreateUser()
	require.NoError(t, err)
	userPub, err = ukp.PublicKey()
	require.NoError(t, err)

	userJWT, err = jwt.NewUserClaims(userPub).Encode(akp)
	require.NoError(t, err)
	seed, err := ukp.Seed()
	require.NoError(t, err)

	creds, err = jwt.FormatUserConfig(userJWT, seed)
	require.NoError(t, err)
	return creds, userJWT, userPub
}

// ── tunables ──────────────────────────────────────────────────────────────────

func TestNatsOptions_Defaults(t *testing.T) {
	o := applyOptions(t, connopts.New())

	assert.Empty(t, o.Name)
	assert.Equal(t, connopts.DefaultPingInterval, o.PingInterval)
	assert.Equal(t, connopts.DefaultConnectionTimeout, o.Timeout)
	assert.Equal(t, connopts.DefaultMaxReconnects, o.MaxReconnect)
	assert.Equal(t, connopts.DefaultSubscriptionCapacity, o.SubChanLen)
	assert.Equal(t, connopts.DefaultInboxPrefix, o.InboxPrefix)
	assert.False(t, o.NoEcho)
	assert.False(t, o.RetryOnFailedConnect)
	assert.False(t, o.IgnoreDiscoveredServers)
	assert.False(t, o.NoRandomize)
	assert.Empty(t, o.User)
	assert.Empty(t, o.Token)
	assert.Nil(t, o.UserJWT)
}

func TestNatsOptions_EveryTunable(t *testing.T) {
	co := connopts.New().
		Name("svc").
		PingInterval(10 * time.Second).
		NoEcho().
		RetryOnInitialConnect().
		MaxReconnects(3).
		ConnectionTimeout(time.Second).
		SubscriptionCapacity(128).
		CustomInboxPrefix("_SVC").
		IgnoreDiscoveredServers().
		RetainServersOrder()

	o := applyOptions(t, co)

	assert.Equal(t, "svc", o.Name)
	assert.Equal(t, 10*time.Second, o.PingInterval)
	assert.True(t, o.NoEcho)
	assert.True(t, o.RetryOnFailedConnect)
	assert.Equal(t, 3, o.MaxReconnect)
	assert.Equal(t, time.Second, o.Timeout)
	assert.Equal(t, 128, o.SubChanLen)
	assert.Equal(t, "_SVC", o.InboxPrefix)
	assert.True(t, o.IgnoreDiscoveredServers)
	assert.True(t, o.NoRandomize)
}

func TestNatsOptions_InvalidInboxPrefixFailsOnApply(t *testing.T) {
	opts, err := NatsOptions(*connopts.New().CustomInboxPrefix("bad.*"))
	require.NoError(t, err)

	o := nats.GetDefaultOptions()
	var applyErr error
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			applyErr = err
		}
	}
	assert.Error(t, applyErr)
}

// ── credentials ───────────────────────────────────────────────────────────────

func TestNatsOptions_UserPassword(t *testing.T) {
	o := applyOptions(t, connopts.New().UserAndPassword("alice", "secret"))

	assert.Equal(t, "alice", o.User)
	assert.Equal(t, "secret", o.Password)
}

func TestNatsOptions_Token(t *testing.T) {
	o := applyOptions(t, connopts.New().Token("xyz"))

	assert.Equal(t, "xyz", o.Token)
}

func TestNatsOptions_Nkey(t *testing.T) {
	kp, err := nkeys.CreateUser()
	require.NoError(t, err)
	seed, err := kp.Seed()
	require.NoError(t, err)
	pub, err := kp.PublicKey()
	require.NoError(t, err)

	o := applyOptions(t, connopts.New().Nkey(string(seed)))

	assert.Equal(t, pub, o.Nkey)
	require.NotNil(t, o.SignatureCB)
	sig, err := o.SignatureCB([]byte("nonce"))
	require.NoError(t, err)
	assert.NoError(t, kp.Verify([]byte("nonce"), sig))
}

func TestNatsOptions_InvalidNkeySeed(t *testing.T) {
	_, err := NatsOptions(*connopts.New().Nkey("not-a-seed"))

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestNatsOptions_Credentials(t *testing.T) {
	creds, userJWT, _ := userCreds(t)

	o := applyOptions(t, connopts.New().Credentials(string(creds)))

	require.NotNil(t, o.UserJWT)
	got, err := o.UserJWT()
	require.NoError(t, err)
	assert.Equal(t, userJWT, got)
	assert.NotNil(t, o.SignatureCB)
}

func TestNatsOptions_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"empty", ""},
		{"garbage", "SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NatsOptions(*connopts.New().Credentials(tt.contents))

			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
