// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth resolves the authentication strategy of a connection document.
//
// The "auth_type" field selects exactly one variant of [Strategy]; only the
// fields that variant needs are consulted, so a document may carry leftovers
// from other variants (for example both a token and a password) without
// ambiguity.
package auth

import "fmt"

// Strategy is one of NoAuth, UserPassword, Token, Nkey or CredentialFile.
// The set is closed: the interface cannot be implemented outside this package.
//
// String never includes secret material.
type Strategy interface {
	fmt.Stringer
	strategy()
}

// NoAuth connects without credentials.
type NoAuth struct{}

// UserPassword authenticates with a user name and password.
type UserPassword struct {
	User     string
	Password string
}

// Token authenticates with a bearer token.
type Token struct {
	Token string
}

// Nkey authenticates by signing the server nonce with an nkey seed.
type Nkey struct {
	Seed string
}

// CredentialFile carries the full contents of a decorated .creds file.
type CredentialFile struct {
	Contents string
}

func (NoAuth) strategy()         {}
func (UserPassword) strategy()   {}
func (Token) strategy()          {}
func (Nkey) strategy()           {}
func (CredentialFile) strategy() {}

func (NoAuth) String() string { return "no_auth" }

func (s UserPassword) String() string { return fmt.Sprintf("user_password(user=%q)", s.User) }

func (Token) String() string { return "token" }

func (Nkey) String() string { return "nkey" }

func (s CredentialFile) String() string {
	return fmt.Sprintf("credential_file(%d bytes)", len(s.Contents))
}
