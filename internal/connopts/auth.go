// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connopts

// The credential calls are mutually exclusive: each one clears whatever a
// previous call stored.

// UserAndPassword authenticates with a user name and password.
func (o *ConnectOptions) UserAndPassword(user, password string) *ConnectOptions {
	o.clearCredentials()
	o.settings.Auth = AuthUserPassword
	o.settings.User = user
	o.settings.Password = password
	return o
}

// Token authenticates with a bearer token.
func (o *ConnectOptions) Token(token string) *ConnectOptions {
	o.clearCredentials()
	o.settings.Auth = AuthToken
	o.settings.Token = token
	return o
}

// Nkey authenticates by signing the server nonce with the given nkey seed.
func (o *ConnectOptions) Nkey(seed string) *ConnectOptions {
	o.clearCredentials()
	o.settings.Auth = AuthNkey
	o.settings.NkeySeed = seed
	return o
}

// Credentials authenticates with the contents of a decorated .creds file
// (user JWT plus nkey seed). The contents are not parsed here.
func (o *ConnectOptions) Credentials(contents string) *ConnectOptions {
	o.clearCredentials()
	o.settings.Auth = AuthCredentials
	o.settings.Credentials = contents
	return o
}

func (o *ConnectOptions) clearCredentials() {
	o.settings.Auth = AuthNone
	o.settings.User = ""
	o.settings.Password = ""
	o.settings.Token = ""
	o.settings.NkeySeed = ""
	o.settings.Credentials = ""
}
