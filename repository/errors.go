package repository

import "errors"

var (
	// ErrDuplicateName is returned by Create when a product with the same
	// name already exists.
	ErrDuplicateName = errors.New("product with this name already exists")

	// ErrNotFound is returned by FindByID when no product matches the id.
	ErrNotFound = errors.New("product not found")
)
