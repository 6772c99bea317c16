// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidServerAddress is returned when the "server" field is neither a
// string nor a list of strings.
var ErrInvalidServerAddress = errors.New("server must be a string or a list of strings")

type serverAddressKind int

const (
	serverAddressUnset serverAddressKind = iota
	serverAddressSingle
	serverAddressList
)

// ServerAddress is the polymorphic "server" field of a connection document.
// It holds either a single address or an ordered list of addresses exactly
// as authored. The zero value means the field was absent or null.
type ServerAddress struct {
	kind   serverAddressKind
	single string
	list   []string
}

// SingleServer returns a ServerAddress holding one address.
func SingleServer(address string) ServerAddress {
	return ServerAddress{kind: serverAddressSingle, single: address}
}

// ServerList returns a ServerAddress holding an ordered list of addresses.
// A nil or empty list is still a list: resolution decides whether it is usable.
func ServerList(addresses ...string) ServerAddress {
	list := make([]string, len(addresses))
	copy(list, addresses)
	return ServerAddress{kind: serverAddressList, list: list}
}

// IsSet reports whether the field was present in the document.
func (a ServerAddress) IsSet() bool {
	return a.kind != serverAddressUnset
}

// Single returns the address and true when the field was authored as a string.
func (a ServerAddress) Single() (string, bool) {
	return a.single, a.kind == serverAddressSingle
}

// List returns a copy of the addresses and true when the field was authored
// as a sequence.
func (a ServerAddress) List() ([]string, bool) {
	if a.kind != serverAddressList {
		return nil, false
	}
	list := make([]string, len(a.list))
	copy(list, a.list)
	return list, true
}

// UnmarshalYAML accepts a scalar string or a sequence of strings.
func (a *ServerAddress) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			*a = ServerAddress{}
			return nil
		}
		if value.ShortTag() != "!!str" {
			return fmt.Errorf("%w: got %s at line %d", ErrInvalidServerAddress, value.ShortTag(), value.Line)
		}
		*a = SingleServer(value.Value)
		return nil
	case yaml.SequenceNode:
		list := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.ShortTag() != "!!str" {
				return fmt.Errorf("%w: list item at line %d is not a string", ErrInvalidServerAddress, item.Line)
			}
			list = append(list, item.Value)
		}
		*a = ServerAddress{kind: serverAddressList, list: list}
		return nil
	default:
		return fmt.Errorf("%w: line %d", ErrInvalidServerAddress, value.Line)
	}
}

// UnmarshalJSON accepts a JSON string, an array of strings or null.
func (a *ServerAddress) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*a = ServerAddress{}
		return nil
	case string:
		*a = SingleServer(value)
		return nil
	case []any:
		list := make([]string, 0, len(value))
		for i, item := range value {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("%w: list item %d is not a string", ErrInvalidServerAddress, i)
			}
			list = append(list, s)
		}
		*a = ServerAddress{kind: serverAddressList, list: list}
		return nil
	default:
		return ErrInvalidServerAddress
	}
}
