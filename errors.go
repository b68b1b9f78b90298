package cubescan

import "errors"

// Sentinel errors for the cubescan package.
var (
	// Table errors
	ErrTableTruncated = errors.New("cubescan: confidence table truncated")

	// Matching errors
	ErrScan = errors.New("cubescan: scan error")

	// Validation errors
	ErrInvalidFacecube = errors.New("cubescan: invalid facelet string")
)
