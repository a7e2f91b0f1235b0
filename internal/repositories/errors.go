package repositories

import "errors"

// Sentinel errors shared by all repositories. Callers match them with
// errors.Is; the wrapped messages carry the offending identifiers.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTypeInUse is returned when deleting a product type that is still
	// referenced by at least one product.
	ErrTypeInUse = errors.New("product type is still referenced by products")

	// ErrNegativeAmount is returned when a relative amount adjustment would
	// drive a product's amount below zero.
	ErrNegativeAmount = errors.New("resulting amount would be negative")
)
