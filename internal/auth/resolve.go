// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/nats-conn-config/models"
)

// Resolve selects the authentication strategy described by opts.
//
// Without an auth_type the result is NoAuth and no other field is checked.
// Otherwise every field required by the selected variant must be present;
// fields of other variants are ignored. For credential_file the referenced
// file is read immediately and its contents become part of the strategy.
//
// Errors wrap ErrMissingAuthField, ErrUnknownAuthType or
// ErrCredentialFileUnreadable.
func Resolve(opts *models.PlainOptions) (Strategy, error) {
	if opts.AuthType == nil {
		return NoAuth{}, nil
	}

	authType := models.AuthType(*opts.AuthType)
	switch authType {
	case models.AuthTypeNoAuth:
		return NoAuth{}, nil
	case models.AuthTypeUserPassword:
		user, err := requireField(authType, "user", opts.User)
		if err != nil {
			return nil, err
		}
		pass, err := requireField(authType, "pass", opts.Pass)
		if err != nil {
			return nil, err
		}
		return UserPassword{User: user, Password: pass}, nil
	case models.AuthTypeToken:
		token, err := requireField(authType, "token", opts.Token)
		if err != nil {
			return nil, err
		}
		return Token{Token: token}, nil
	case models.AuthTypeNkey:
		seed, err := requireField(authType, "nkey", opts.Nkey)
		if err != nil {
			return nil, err
		}
		return Nkey{Seed: seed}, nil
	case models.AuthTypeCredentialFile:
		path, err := requireField(authType, "credential_file", opts.CredentialFile)
		if err != nil {
			return nil, err
		}
		contents, err := readCredentialFile(path)
		if err != nil {
			return nil, err
		}
		return CredentialFile{Contents: contents}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAuthType, *opts.AuthType)
	}
}

func requireField(authType models.AuthType, field string, value *string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%w: auth_type %q requires %q", ErrMissingAuthField, authType, field)
	}
	return *value, nil
}

func readCredentialFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCredentialFileUnreadable, err)
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCredentialFileUnreadable, path, err)
	}

	return string(contents), nil
}
