package rope

import "errors"

// Errors returned by rope operations.
var (
	// ErrOffsetOutOfRange reports an offset outside the valid bounds for a
	// lookup or insertion point.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid reports a malformed or out-of-bounds start/end pair.
	ErrRangeInvalid = errors.New("invalid range")

	// ErrInvalidStructure reports a missing child encountered during
	// traversal. It signals a broken internal invariant rather than bad
	// input and should be unreachable.
	ErrInvalidStructure = errors.New("rope structure invalid")
)
