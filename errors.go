package webarchive

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingResource is returned when an archive has no
	// WebMainResource dictionary.
	ErrMissingResource = errors.New("webarchive: WebMainResource missing")

	// ErrOutputDirectoryMissing is returned when the caller's output
	// directory does not exist.
	ErrOutputDirectoryMissing = errors.New("webarchive: output directory does not exist")
)

// An InvalidFileError wraps a failure to decode the input as a binary
// property list.
type InvalidFileError struct {
	Err error
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("webarchive: not a valid webarchive file: %v", e.Err)
}

func (e *InvalidFileError) Unwrap() error {
	return e.Err
}

// An EncodingError reports a WebResourceTextEncodingName that could not be
// resolved to a character decoder.
type EncodingError struct {
	Name string
	Err  error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("webarchive: cannot decode text encoding %q: %v", e.Name, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
