package imaging

import "errors"

// Failure classes reported by Open, Save and OutputFormat. Callers match them
// with errors.Is; the wrapped error carries the underlying cause.
var (
	// ErrInputNotFound means the input path does not exist or cannot be read.
	ErrInputNotFound = errors.New("input not found")

	// ErrDecode means the input exists but is not a decodable image.
	ErrDecode = errors.New("cannot decode image")

	// ErrUnsupportedFormat means the output extension has no known encoder.
	ErrUnsupportedFormat = errors.New("unsupported output format")

	// ErrOutputWrite means encoding or writing the output file failed.
	ErrOutputWrite = errors.New("cannot write output")
)
