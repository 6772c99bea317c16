// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrMissingAuthField indicates that a field required by the selected
	// auth_type is absent.
	ErrMissingAuthField = errors.New("missing auth field")
	// ErrUnknownAuthType indicates an auth_type value outside the known set.
	ErrUnknownAuthType = errors.New("unknown auth type")
	// ErrCredentialFileUnreadable indicates that the credential file named by
	// credential_file could not be opened or read.
	ErrCredentialFileUnreadable = errors.New("credential file is unreadable")
)
