package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. Storage adapters never
// surface infrastructure failures at all: a missing or unreadable backing
// file reads as an empty collection, so the only errors callers see are
// the sentinels below.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials indicates an id/password pair did not match.
	// Deliberately covers both "no such customer" and "wrong password"
	// so login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
