package cube

import "errors"

var (
	// ErrDuplicateChunk is returned when a chunk name is added twice.
	ErrDuplicateChunk = errors.New("duplicate chunk name")
	// ErrInvalidChunkName is returned for names that cannot be used as a
	// file name.
	ErrInvalidChunkName = errors.New("invalid chunk name")
	// ErrInvalidTable is returned when table columns or rows are malformed.
	ErrInvalidTable = errors.New("invalid table")
)
