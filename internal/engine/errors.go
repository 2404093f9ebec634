package engine

import "errors"

var (
	// ErrUnknownTarget indicates the named target is not in the descriptor.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrUnknownServer indicates the named server is not in the catalog.
	ErrUnknownServer = errors.New("unknown server")

	// ErrEmptySelection indicates a deploy was attempted with no servers
	// selected for the target.
	ErrEmptySelection = errors.New("no servers selected")
)
