// Package memory provides in-memory implementations of the driven store
// ports. They are slice-backed rather than map-backed so that upserts keep
// positional order, matching the behaviour of the file-backed adapters
// they stand in for during tests.
package memory
