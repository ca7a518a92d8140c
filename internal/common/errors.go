// Package common defines sentinel errors shared by the maumdiary stores
// and the CLI. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Account store errors.
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("not logged in")

	// Persistence errors. In-memory state stays usable when one of these
	// is returned; only durability is lost.
	ErrPersistence = errors.New("persistence failure")
)
