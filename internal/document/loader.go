// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package document reads connection documents from disk and decodes them
// into [models.PlainOptions].
//
// The format is chosen by file extension: ".json" is decoded as JSON, every
// other extension as YAML. Unknown keys are ignored unless the loader is built
// with [WithStrict].
package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/nats-conn-config/internal/validators"
	"github.com/MKhiriev/nats-conn-config/models"
)

// Format identifies the syntax of a connection document.
type Format string

const (
	// FormatYAML is the default document syntax.
	FormatYAML Format = "yaml"
	// FormatJSON is selected for files with a ".json" extension.
	FormatJSON Format = "json"
)

// FormatOf returns the document format implied by the path's extension.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Option configures a FileLoader.
type Option func(*FileLoader)

// WithStrict makes the loader reject documents containing unknown keys.
func WithStrict(strict bool) Option {
	return func(l *FileLoader) {
		l.strict = strict
	}
}

// WithValidator replaces the structural validator run after decoding.
func WithValidator(v validators.Validator) Option {
	return func(l *FileLoader) {
		l.validator = v
	}
}

// FileLoader loads connection documents from the local file system.
// It holds no per-call state and can be shared.
type FileLoader struct {
	strict    bool
	validator validators.Validator
}

// NewFileLoader constructs a FileLoader. By default it is lenient about
// unknown keys and validates with validators.NewPlainOptionsValidator.
func NewFileLoader(opts ...Option) *FileLoader {
	l := &FileLoader{
		validator: validators.NewPlainOptionsValidator(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load opens path, decodes it and validates the result.
//
// Errors wrap [ErrDocumentUnreadable] when the file cannot be opened or read
// and [ErrDocumentMalformed] when it cannot be decoded or fails validation.
// The file is closed before Load returns.
func (l *FileLoader) Load(path string) (*models.PlainOptions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentUnreadable, err)
	}

	return l.decode(bytes.NewReader(data), FormatOf(path))
}

// Decode decodes and validates a document read from r in the given format.
func (l *FileLoader) Decode(r io.Reader, format Format) (*models.PlainOptions, error) {
	return l.decode(r, format)
}

func (l *FileLoader) decode(r io.Reader, format Format) (*models.PlainOptions, error) {
	var (
		opts *models.PlainOptions
		err  error
	)
	switch format {
	case FormatJSON:
		opts, err = decodeJSON(r, l.strict)
	default:
		opts, err = decodeYAML(r, l.strict)
	}
	if err != nil {
		return nil, err
	}

	if l.validator != nil {
		if err := l.validator.Validate(opts); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDocumentMalformed, err)
		}
	}

	return opts, nil
}
