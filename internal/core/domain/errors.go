package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingColumns indicates a source table lacks required columns.
	// The merge aborts; no records are produced.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrEmptyTable indicates a source table parsed as empty.
	ErrEmptyTable = errors.New("source table is empty")

	// ErrEmptyBatch indicates a generation run produced zero documents.
	// This is a user-visible failure, distinct from per-record warnings.
	ErrEmptyBatch = errors.New("batch contains no labels")

	// ErrUnknownSlot indicates a symbol slot outside the catalog range.
	ErrUnknownSlot = errors.New("unknown symbol slot")
)
