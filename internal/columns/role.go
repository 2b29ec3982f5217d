package columns

//go:generate go tool stringer -type=Role -linecomment -output=role_string.go

// Role is the semantic role of a column.
type Role int

const (
	_ Role = iota // zero value is not a valid role

	RoleDimension     // dimension
	RoleMeasureType   // measure-type
	RoleAttribute     // attribute
	RoleObservedValue // observed-value
	RoleSuppressed    // suppressed
)

// IsDimension reports whether the role places the column on a cube axis.
// Measure type columns are dimensions too.
func (r Role) IsDimension() bool {
	return r == RoleDimension || r == RoleMeasureType
}
