package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a post or comment id does not resolve.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would violate a uniqueness rule
	// (duplicate email on registration, duplicate post title).
	ErrConflict = errors.New("record already exists")
	// ErrInvalidCredentials covers both login failure cases. ErrUnknownEmail
	// and ErrWrongPassword wrap it so handlers can keep the two distinct
	// user-facing messages.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnknownEmail  = fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
	ErrWrongPassword = fmt.Errorf("%w: wrong password", ErrInvalidCredentials)
)
