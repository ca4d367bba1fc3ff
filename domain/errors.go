package domain

import "errors"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("not correct email")
	ErrInvalidUsername    = errors.New("not correct username")
	ErrInvalidPassword    = errors.New("not correct password")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrDeckNameRequired = errors.New("name is required")
	ErrDeckSize         = errors.New("deck must contain exactly 10 cards")
	ErrUnknownCard      = errors.New("some card ids are invalid")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidDeckID    = errors.New("invalid deck id")
)
