package workbreak

import "errors"

// Break domain errors
var (
	// ErrBreakNotFound covers both an unknown break ID and a break that is
	// no longer open: neither names an open break that could be closed.
	ErrBreakNotFound = errors.New("no open break matches the given id")
)
