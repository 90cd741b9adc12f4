package types

import "errors"

// Error taxonomy for the guide pipeline. Location and upstream failures are
// recovered internally; only validation errors and the generation catch-all
// are ever surfaced to a caller.
var (
	// ErrLocationNotFound means a ZIP or city could not be resolved. Callers
	// substitute a default LocationRecord instead of failing the request.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUpstreamCallFailed covers geocoder or model transport failures.
	ErrUpstreamCallFailed = errors.New("upstream call failed")

	// ErrResponseParseFailed means the model returned text that is not valid
	// JSON after fence stripping.
	ErrResponseParseFailed = errors.New("response parse failed")

	// ErrValidationFailed is the only error class mapped to a 4xx response.
	ErrValidationFailed = errors.New("validation failed")

	// ErrGuideGenerationFailed is the catch-all for failures that survive
	// every fallback, mapped to a 500 response.
	ErrGuideGenerationFailed = errors.New("guide generation failed")
)
