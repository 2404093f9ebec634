package template

import "errors"

var (
	// ErrFormat wraps parse failures on malformed documents. Callers skip
	// the document and keep going; a bad file never aborts a batch.
	ErrFormat = errors.New("malformed document")

	// ErrMissingContainer reports a JSON document with none of the
	// recognized server container keys.
	ErrMissingContainer = errors.New("no server container key found")

	// ErrMissingContainerKey reports a render attempt on a JSON document
	// that carries no container key to write into.
	ErrMissingContainerKey = errors.New("document has no container key")

	// ErrUnsupportedFormat reports a file or format outside json/toml.
	ErrUnsupportedFormat = errors.New("unsupported config format")
)
