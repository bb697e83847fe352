package esplora

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

var (
	// ErrProofMismatch reports that a recomputed merkle root disagrees with
	// the root claimed by the containing block. Non-retryable; callers must
	// not treat the transaction as confirmed.
	ErrProofMismatch = errors.New("merkle proof does not match block merkle root")

	// ErrNoFeeEstimate reports that the fee table holds no bucket at or
	// above the requested confirmation target.
	ErrNoFeeEstimate = errors.New("no fee estimate available for target")

	// ErrInvalidConfig reports a configuration rejected before any network
	// activity takes place.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMalformedWitness reports a witness element that is not valid hex.
	ErrMalformedWitness = errors.New("malformed witness hex")
)

// StatusError is a non-2xx, non-404 HTTP response from the explorer.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("esplora: %s returned status %d", e.Endpoint, e.Code)
}

// MalformedResponseError is a response body that could not be decoded.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("esplora: malformed response from %s: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// IsTransient reports whether a request failure is worth retrying:
// transport errors including socket timeouts, and 5xx responses.
// Malformed bodies and client errors are surfaced immediately; a
// canceled or expired caller context is never retried.
func IsTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code >= 500
	}
	var malformed *MalformedResponseError
	if errors.As(err, &malformed) {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
