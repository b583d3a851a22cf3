package ports

import "errors"

// Failure taxonomy shared by every provider adapter and strategy.
// Adapters wrap these sentinels with fmt.Errorf("...: %w", ...) so callers
// can dispatch with errors.Is while keeping the provider detail.
var (
	// ErrProviderUnavailable covers network errors, timeouts, and non-2xx
	// responses, including provider-side rate limiting.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrNoRouteFound means the provider answered but returned zero routes.
	ErrNoRouteFound = errors.New("no route found")

	// ErrGeometryDecode means the provider's path geometry could not be decoded.
	ErrGeometryDecode = errors.New("geometry decode failed")

	// ErrBoundingBoxTooLarge means a spatial query area exceeded the safe span.
	ErrBoundingBoxTooLarge = errors.New("bounding box too large")

	// ErrRateLimited is the self-imposed cooldown skip, not a provider response.
	ErrRateLimited = errors.New("rate limited")

	// ErrStationUnavailable means no bike station satisfied the availability
	// predicate within range.
	ErrStationUnavailable = errors.New("no usable bike station")

	// ErrStopNotFound means no transit stop was found within range.
	ErrStopNotFound = errors.New("no transit stop nearby")

	// ErrRouteUnavailable is terminal: every fallback, including the
	// walking route, was exhausted.
	ErrRouteUnavailable = errors.New("route unavailable")
)
