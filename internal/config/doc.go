// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for go-fire-crypt.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. Flags are registered on a
// cobra/pflag flag set with [RegisterFlags].
package config
