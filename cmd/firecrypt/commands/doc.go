// Package commands implements the firecrypt command tree.
//
// Every command loads configuration from flags, environment and an optional
// JSON file, builds a [client.Client] and prints its result to stdout. Values
// are JSON: they are read from the last argument or, when it is omitted,
// from stdin, and printed back as compact JSON with key order preserved.
package commands
