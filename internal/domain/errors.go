package domain

import "errors"

var (
	// ErrNotFound means no active row matched.
	ErrNotFound = errors.New("not found")
	// ErrValidation covers malformed input: paging, enums, missing relations.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is a unique constraint violation in the store.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned for bad credentials or tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the actor lacks the required role.
	ErrForbidden = errors.New("forbidden")
	// ErrTooManyRequests is returned when a rate-limited action is repeated too soon.
	ErrTooManyRequests = errors.New("too many requests")
)
