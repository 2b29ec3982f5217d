package columns

import (
	"fmt"

	"csvcube/internal/common"
)

// Resolve converts the raw configuration of one column into a Column.
// See the package documentation for the rule order.
func Resolve(title string, raw any) (Column, error) {
	if flag, ok := raw.(bool); ok && !flag {
		return Suppressed(title), nil
	}

	opts, ok := AsOptions(raw)
	if !ok {
		// Absent or non-mapping configuration: treat it as a dimension.
		return NewDimension(title, Dimension{}), nil
	}

	switch {
	case opts.Has(KeyDimension) && opts.Has(KeyValue):
		dimension := opts.String(KeyDimension)
		if IsQBMeasureType(dimension) {
			return ExistingMeasureType(title, dimension, opts.String(KeyValue), opts.StringSlice(KeyTypes)), nil
		}

		return ExistingDimension(title, dimension, opts.String(KeyValue)), nil

	case opts.Has(KeyParent) || opts.Has(KeyDescription) || opts.Has(KeyLabel):
		return NewDimension(title, Dimension{
			ParentURI:   opts.String(KeyParent),
			ValueURI:    opts.String(KeyValue),
			SourceURI:   opts.String(KeySource),
			Description: opts.String(KeyDescription),
			Label:       opts.String(KeyLabel),
			Codelist:    opts.Codelist(KeyCodelist),
		}), nil

	case opts.Has(KeyAttribute) && opts.Has(KeyValue):
		return NewAttribute(title, opts.String(KeyAttribute), opts.String(KeyValue)), nil

	case (opts.Has(KeyUnit) && opts.Has(KeyMeasure)) || opts.Has(KeyDatatype):
		return NewObservedValue(title, opts.String(KeyMeasure), opts.String(KeyUnit), opts.String(KeyDatatype)), nil

	default:
		return Column{}, &UnresolvableError{Title: title, Raw: raw}
	}
}

// Table is the resolved set of columns of one table, in table column order.
type Table struct {
	Columns []Column
	index   map[string]int
}

// Lookup returns the column with the given title.
func (t *Table) Lookup(title string) (Column, bool) {
	i, ok := t.index[title]
	if !ok {
		return Column{}, false
	}

	return t.Columns[i], true
}

// ByRole returns the columns with the given role, in table order.
func (t *Table) ByRole(role Role) []Column {
	return common.Filter(t.Columns, func(c Column) bool { return c.Role == role })
}

// ObservedValue returns the table's observed value column.
func (t *Table) ObservedValue() (Column, bool) {
	return common.First(t.ByRole(RoleObservedValue))
}

// ResolveTable resolves every column title of one table against mapping and
// runs the table consistency pass. Titles missing from mapping resolve as
// plain dimensions.
//
// The pass is table scoped: chunks exposing different column subsets must be
// resolved separately.
func ResolveTable(titles []string, mapping Mapping) (*Table, error) {
	t := &Table{
		Columns: make([]Column, 0, len(titles)),
		index:   make(map[string]int, len(titles)),
	}

	for _, title := range titles {
		raw, _ := mapping.Lookup(title)

		col, err := Resolve(title, raw)
		if err != nil {
			return nil, err
		}

		t.index[title] = len(t.Columns)
		t.Columns = append(t.Columns, col)
	}

	err := backfillMeasure(t)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// backfillMeasure enforces the observed value / measure type arity rules and
// copies the measure type's URI onto an observed value lacking a measure.
func backfillMeasure(t *Table) error {
	observed := t.ByRole(RoleObservedValue)
	if !common.IsSingle(observed) {
		return &ArityError{Role: RoleObservedValue, Count: len(observed)}
	}

	ov := observed[0].ObservedValue
	if ov.MeasureURI != "" {
		return nil
	}

	measureTypes := t.ByRole(RoleMeasureType)
	if !common.IsSingle(measureTypes) {
		return fmt.Errorf("observed value column %q has no measure: %w",
			observed[0].Title, &ArityError{Role: RoleMeasureType, Count: len(measureTypes)})
	}

	// ov points into t.Columns, so the update is visible through the table.
	ov.MeasureURI = measureTypes[0].MeasureURI()

	return nil
}
