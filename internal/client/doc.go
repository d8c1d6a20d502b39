// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires configuration, the field cipher and the two store
// adapters into a single application facade.
//
// Key material is decoded once when the [App] is built. A store whose
// settings are missing is not an error until it is first requested, so a
// process that only encrypts strings needs no store configuration at all.
package client
