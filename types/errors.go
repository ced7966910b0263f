package types

import "errors"

var (
	// ErrInvalidInput covers missing or non-numeric form fields. Nothing is
	// written when it fires.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable means the backing database could not be opened,
	// read, or written.
	ErrStoreUnavailable = errors.New("staff store unavailable")

	// ErrEmptyExport is returned when an export is requested with zero staff
	// on record. A client error, not a server fault.
	ErrEmptyExport = errors.New("no staff records to export")
)
