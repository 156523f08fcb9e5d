package routemap

import "errors"

var (
	// Request-time errors. Both are recoverable: the hosting dispatch loop
	// decides the wire-level response.
	ErrNotFound         = errors.New("no route matched the requested path")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// Build-time errors. These abort route registration and are expected to
	// fail server startup; the map stays structurally valid but incomplete.
	ErrImproperlyConfigured = errors.New("improperly configured route")
	ErrUnknownRouteKind     = errors.New("unknown route kind")
	ErrStaticConflict       = errors.New("cannot have configured routes below a static path")
	ErrConflictingParams    = errors.New("conflicting path parameters")
	ErrCatchallConflict     = errors.New("catch-all handlers handle all methods and cannot coexist with method-specific handlers")
)
