// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import "errors"

var (
	// ErrDocumentUnreadable indicates that the document path could not be
	// opened or read.
	ErrDocumentUnreadable = errors.New("connection document is unreadable")
	// ErrDocumentMalformed indicates that the document does not decode into a
	// plain options record: wrong types, an unknown key in strict mode, or a
	// missing server field.
	ErrDocumentMalformed = errors.New("connection document is malformed")
)
