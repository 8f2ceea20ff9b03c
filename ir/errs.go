package ir

import "errors"

var (
	ErrInvalidKey    = errors.New("invalid key")
	ErrNotFound      = errors.New("not found")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrDuplicateKey  = errors.New("duplicate key")
	ErrInvalidNumber = errors.New("invalid number")
)
