package webarchive

import (
	"bytes"
	"io"

	"golang.org/x/net/html/charset"
)

// decodeText converts data to a UTF-8 string according to the archive's
// declared text encoding label. Labels are resolved the way browsers do
// (WHATWG encoding labels); an unknown label is an EncodingError.
func decodeText(data []byte, label string) (string, error) {
	if label == "" {
		label = "UTF-8"
	}
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return "", &EncodingError{Name: label, Err: err}
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", &EncodingError{Name: label, Err: err}
	}
	return string(decoded), nil
}
