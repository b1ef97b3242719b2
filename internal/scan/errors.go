package scan

import "errors"

var (
	// ErrNotFound means the requested addon folder does not exist.
	ErrNotFound = errors.New("addon folder not found")

	// ErrParse means a metadata file was present but malformed. It is
	// distinct from the absent case, which is reported as a nil result
	// with a nil error.
	ErrParse = errors.New("malformed metadata file")
)
