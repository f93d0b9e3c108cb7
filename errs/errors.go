// Package errs defines the sentinel errors shared across the zombodb
// packages.
//
// Errors are plain sentinels created with errors.New. Call sites wrap them
// with fmt.Errorf("%w: ...", ...) to attach the offending field or option
// name, so callers can match with errors.Is while still seeing full context
// in the message.
package errs

import "errors"

// Relation and block errors.
var (
	// ErrInvalidRelationKind is returned when options are requested for a
	// relation that is not an index.
	ErrInvalidRelationKind = errors.New("relation is not an index")

	// ErrInvalidHeaderSize is returned when a block is too short to contain
	// the fixed options header.
	ErrInvalidHeaderSize = errors.New("invalid options header size")

	// ErrInvalidBlockLength is returned when the length recorded in the
	// block header disagrees with the buffer it was read from.
	ErrInvalidBlockLength = errors.New("invalid options block length")

	// ErrOffsetOutOfRange is returned when a string offset in the header
	// points outside the allocated block.
	ErrOffsetOutOfRange = errors.New("string offset out of range")

	// ErrMissingTerminator is returned when a string span is not
	// NUL-terminated before the end of the block.
	ErrMissingTerminator = errors.New("string missing NUL terminator")

	// ErrInvalidEncoding is returned when a stored string is not valid
	// UTF-8. It indicates corruption of the stored block.
	ErrInvalidEncoding = errors.New("stored string is not valid UTF-8")
)

// Option parsing and validation errors.
var (
	// ErrUnknownOption is returned when an option name is not in the
	// registry.
	ErrUnknownOption = errors.New("unrecognized option")

	// ErrInvalidOptionType is returned when an option value cannot be
	// converted to the registered type.
	ErrInvalidOptionType = errors.New("invalid option value type")

	// ErrOptionOutOfRange is returned when an integer option value falls
	// outside its registered bounds.
	ErrOptionOutOfRange = errors.New("option value out of range")

	// ErrMissingTrailingSlash is returned by the URL validator when the
	// value does not end with a forward slash.
	ErrMissingTrailingSlash = errors.New("url must end with a forward slash")

	// ErrMalformedURL is returned by the URL validator when the value does
	// not parse as an absolute URL.
	ErrMalformedURL = errors.New("malformed url")
)

// Catalog storage errors.
var (
	// ErrRelationNotFound is returned when a relation id is not present in
	// the catalog store.
	ErrRelationNotFound = errors.New("relation not found")

	// ErrChecksumMismatch is returned when a stored block fails its
	// integrity check on read.
	ErrChecksumMismatch = errors.New("options block checksum mismatch")
)
