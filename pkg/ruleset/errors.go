package ruleset

import "errors"

var (
	// ErrInvalidTuple is returned for malformed rule or filter tuples.
	ErrInvalidTuple = errors.New("ruleset: invalid tuple")
	// ErrUnknownFormat is returned for unsupported file formats.
	ErrUnknownFormat = errors.New("ruleset: unknown format")
	// ErrDuplicateForm is returned when a form name is declared twice.
	ErrDuplicateForm = errors.New("ruleset: duplicate form")
	// ErrFormNotFound is returned by Catalog.Find for unknown names.
	ErrFormNotFound = errors.New("ruleset: form not found")
	// ErrInvalidDocument is returned when a file cannot be decoded.
	ErrInvalidDocument = errors.New("ruleset: invalid document")
)
