package csvw

import "errors"

// ErrNameCollision is returned in strict mode when two column titles of a
// chunk normalize to the same column name. It wraps every collision found.
var ErrNameCollision = errors.New("column name collision")

// Diagnostic codes reported by the projector.
const (
	CodeNameCollision  = "name_collision"
	CodeUnknownKey     = "unknown_key"
	CodeUnusedColumn   = "unused_column"
	CodeUnmappedColumn = "unmapped_column"
)
