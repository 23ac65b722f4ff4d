package internaltypes

import "errors"

var (
	// ErrElementDetached means the page re-rendered between enumerating an
	// element and acting on it.
	ErrElementDetached = errors.New("element detached")
	// ErrProbeTimeout means a probe or action did not finish within its timeout.
	ErrProbeTimeout = errors.New("probe timeout")
	// ErrPageLoad means the initial navigation did not complete.
	ErrPageLoad = errors.New("page load failed")
	ErrNotFound = errors.New("not found")
)

// IsStale reports whether err only invalidates the current candidate.
func IsStale(err error) bool {
	return errors.Is(err, ErrElementDetached) || errors.Is(err, ErrProbeTimeout)
}
