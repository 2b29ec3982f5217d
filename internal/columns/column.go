package columns

import (
	"csvcube/internal/common"
	"csvcube/internal/vocab"
)

// Column is one column of a table together with its resolved role.
// Exactly one payload is set, selected by Role:
//   - RoleDimension, RoleMeasureType: Dimension
//   - RoleAttribute: Attribute
//   - RoleObservedValue: ObservedValue
//   - RoleSuppressed: none
type Column struct {
	Title string
	Role  Role

	Dimension     *Dimension
	Attribute     *Attribute
	ObservedValue *ObservedValue
}

// Dimension describes a column identifying a categorical axis of the cube.
//
// An existing dimension references a published property through DimensionURI
// and ValueURI. A new dimension leaves DimensionURI empty and carries the
// descriptive metadata needed to define one.
type Dimension struct {
	ParentURI    string
	DimensionURI string
	ValueURI     string
	SourceURI    string
	Description  string
	Label        string
	Codelist     *Codelist

	// MeasureType is set when the dimension is the cube's measure type
	// dimension.
	MeasureType *MeasureType
}

// MeasureType refines a dimension whose values select the measure of each
// observation.
type MeasureType struct {
	// Types lists the allowed measure codes in declaration order.
	Types []string
}

// Codelist is either a codelist URI or a flag toggling codelist generation.
type Codelist struct {
	URI     string
	Enabled bool
}

// Attribute qualifies an observation without positioning it in the cube.
type Attribute struct {
	AttributeURI string
	ValueURI     string
}

// ObservedValue is the column holding the observation itself.
type ObservedValue struct {
	// MeasureURI may be empty until the table's measure type column back-fills it.
	MeasureURI string
	UnitURI    string
	Datatype   string
}

// ExistingDimension returns a dimension column referencing a published
// dimension property.
func ExistingDimension(title, dimensionURI, valueURI string) Column {
	return Column{
		Title: title,
		Role:  RoleDimension,
		Dimension: &Dimension{
			DimensionURI: dimensionURI,
			ValueURI:     valueURI,
		},
	}
}

// NewDimension returns a dimension column defining a new dimension. Any
// DimensionURI or MeasureType set on d is cleared.
func NewDimension(title string, d Dimension) Column {
	d.DimensionURI = ""
	d.MeasureType = nil

	return Column{Title: title, Role: RoleDimension, Dimension: &d}
}

// ExistingMeasureType returns a measure type column whose values are
// measures under measureURI.
func ExistingMeasureType(title, dimensionURI, measureURI string, types []string) Column {
	return Column{
		Title: title,
		Role:  RoleMeasureType,
		Dimension: &Dimension{
			DimensionURI: dimensionURI,
			ValueURI:     measureURI,
			MeasureType:  &MeasureType{Types: common.CloneStrings(types)},
		},
	}
}

// NewAttribute returns an attribute column.
func NewAttribute(title, attributeURI, valueURI string) Column {
	return Column{
		Title: title,
		Role:  RoleAttribute,
		Attribute: &Attribute{
			AttributeURI: attributeURI,
			ValueURI:     valueURI,
		},
	}
}

// NewObservedValue returns an observed value column.
func NewObservedValue(title, measureURI, unitURI, datatype string) Column {
	return Column{
		Title: title,
		Role:  RoleObservedValue,
		ObservedValue: &ObservedValue{
			MeasureURI: measureURI,
			UnitURI:    unitURI,
			Datatype:   datatype,
		},
	}
}

// Suppressed returns a column excluded from the semantic schema.
func Suppressed(title string) Column {
	return Column{Title: title, Role: RoleSuppressed}
}

// IsExisting reports whether the dimension references a published dimension.
func (d *Dimension) IsExisting() bool {
	return d.DimensionURI != "" && d.ValueURI != ""
}

// MeasureURI returns the measure URI of a measure type column, which is its
// value URI, or "" for any other column.
func (c Column) MeasureURI() string {
	if c.Role != RoleMeasureType || c.Dimension == nil {
		return ""
	}

	return c.Dimension.ValueURI
}

// IsQBMeasureType reports whether uri is the RDF Data Cube measure type
// property.
func IsQBMeasureType(uri string) bool {
	return uri == vocab.QBMeasureType
}

// Clone returns a copy of c sharing no mutable state with it.
func (c Column) Clone() Column {
	out := Column{Title: c.Title, Role: c.Role}

	if c.Dimension != nil {
		d := *c.Dimension
		if d.Codelist != nil {
			cl := *d.Codelist
			d.Codelist = &cl
		}

		if d.MeasureType != nil {
			d.MeasureType = &MeasureType{Types: common.CloneStrings(d.MeasureType.Types)}
		}

		out.Dimension = &d
	}

	if c.Attribute != nil {
		a := *c.Attribute
		out.Attribute = &a
	}

	if c.ObservedValue != nil {
		ov := *c.ObservedValue
		out.ObservedValue = &ov
	}

	return out
}
