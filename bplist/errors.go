package bplist

import "fmt"

// An InvalidFormatError reports that the input is not a well-formed
// bplist00 document.
type InvalidFormatError struct {
	Err error
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("bplist: invalid binary property list: %v", e.Err)
}

func (e InvalidFormatError) Unwrap() error {
	return e.Err
}
