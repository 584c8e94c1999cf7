package api

import (
	"errors"
	"fmt"
	"net/http"

	repository "github.com/nobuchiyo/studylens/internal/adapters/repository"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
)

// NewKind tags a sentinel kind with the failing operation.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind tags a sentinel kind with the failing operation and cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}

// writeStoreError translates store failures to their HTTP form: a
// rejection is the caller's problem to resolve (permissions), an
// unreachable store is a service-side failure.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrStoreRejected):
		writeError(w, http.StatusForbidden, "store_rejected", err)
	case errors.Is(err, repository.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "store_unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
