// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types shared by the loader, the resolvers
// and the option mapper: the plain options record read from a connection
// document and the polymorphic values it is made of.
package models
