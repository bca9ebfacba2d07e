package ooxml

import "errors"

// Sentinel errors returned by the ooxml package. Errors returned by the
// Inspect family wrap exactly one of these kinds together with the
// underlying reader's diagnostic text, so callers can either match the
// kind with errors.Is or surface the message verbatim.
var (
	// ErrOpenContainer indicates the input is not a well-formed zip
	// container (bad signature, truncated central directory, ...).
	ErrOpenContainer = errors.New("ooxml: not a valid zip container")

	// ErrReadEntry indicates an individual entry could not be read or
	// decompressed. Any single bad entry aborts the whole inspection.
	ErrReadEntry = errors.New("ooxml: cannot read archive entry")

	// ErrEntryTooLarge indicates an entry's decompressed payload exceeds
	// the limit configured with WithMaxEntrySize.
	ErrEntryTooLarge = errors.New("ooxml: archive entry exceeds size limit")
)
