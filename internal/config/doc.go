// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the settings of the natsconf command itself.
//
// Settings are assembled from several sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (NATSCONF_*)
//  3. Command-line flags that were explicitly set
//
// The connection document named by the settings is not read here; see
// package document.
package config
