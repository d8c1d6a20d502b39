// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// DocumentPath addresses a single document in the document store.
//
// Collection may name a nested collection ("users/u1/orders"); ID is the
// document identifier inside it.
type DocumentPath struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// String returns the slash-joined "collection/id" form used in request URLs.
func (p DocumentPath) String() string {
	return strings.Trim(p.Collection, "/") + "/" + p.ID
}

// TreePath is a slash-delimited address into the JSON-tree store.
type TreePath string

// Normalize trims leading and trailing slashes.
func (p TreePath) Normalize() string {
	return strings.Trim(string(p), "/")
}

// Segments returns the normalized path split on "/". The root path has no
// segments.
func (p TreePath) Segments() []string {
	n := p.Normalize()
	if n == "" {
		return nil
	}
	return strings.Split(n, "/")
}
