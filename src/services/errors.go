package services

import "errors"

// Sentinel errors controllers map onto HTTP statuses. Anything else coming
// out of a service is a storage failure and maps to 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already exists")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInsufficient = errors.New("insufficient balance")
	ErrConflict     = errors.New("conflicting state")
)
