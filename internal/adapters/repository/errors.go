package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	// ErrStoreUnavailable marks a store that cannot be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrStoreRejected marks an operation the store refused, e.g. a
	// permission failure on append.
	ErrStoreRejected = errors.New("record store rejected the operation")
)
