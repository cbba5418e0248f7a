// Package processor converts location records into GeoJSON.
package processor

import "errors"

var (
	// ErrInputNotFound is returned when the input path does not exist or cannot be read.
	ErrInputNotFound = errors.New("input not found")

	// ErrParse is returned when the input is not valid JSON or not a top-level array.
	ErrParse = errors.New("parse input")

	// ErrRecordSkipped marks a record left out of the output. It is never fatal.
	ErrRecordSkipped = errors.New("record skipped")

	// ErrOutputWrite is returned when the output cannot be created or written.
	ErrOutputWrite = errors.New("write output")
)
