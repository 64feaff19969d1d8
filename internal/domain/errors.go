package domain

import "errors"

var (
	// ErrNotFound indicates the requested catalog entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidProduct indicates a product record that cannot be stored,
	// such as a missing name or a non-positive id.
	ErrInvalidProduct = errors.New("invalid product")
)
