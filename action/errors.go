package action

import "errors"

// Sentinel errors returned by Action constructors and parsers.
var (
	// ErrNegativeStart indicates a StartMonth < 0 was supplied.
	ErrNegativeStart = errors.New("action: start month must be >= 0")

	// ErrNonPositiveExtent indicates a Tenor or Length <= 0 was supplied.
	ErrNonPositiveExtent = errors.New("action: tenor/length must be > 0")

	// ErrMalformedToken indicates a short-form token did not match "b<n>" or "w<n>".
	ErrMalformedToken = errors.New("action: malformed short-form token")
)
