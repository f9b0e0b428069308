package pattern

import "errors"

var (
	// ErrConfiguration reports an unusable store configuration: a missing
	// starting sequence, an unknown sequence name or a base outside 2..256.
	ErrConfiguration = errors.New("pattern: invalid configuration")
	// ErrInvalidQuery reports a range query with a negative coordinate or
	// dimension. Rejected queries never touch the cache.
	ErrInvalidQuery = errors.New("pattern: invalid query")
)
