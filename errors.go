package ledger

import "errors"

// Configuration and usage errors. All of them indicate a mistake in the code
// that builds a report; callers are expected to treat them as fatal.
var (
	ErrDuplicateColumn  = errors.New("duplicate column name")
	ErrDuplicateShape   = errors.New("duplicate shape name")
	ErrGridMismatch     = errors.New("shapes disagree on slot count")
	ErrInvalidColumn    = errors.New("invalid column")
	ErrUnknownSize      = errors.New("unknown named size")
	ErrUnknownShape     = errors.New("unknown shape")
	ErrTooManyCells     = errors.New("too many cells for shape")
	ErrNoCell           = errors.New("row has no cell")
	ErrSecondaryTextSet = errors.New("secondary text already set")
	ErrFrozen           = errors.New("report layout has begun")
	ErrNotInitialized   = errors.New("report not initialized")
)
