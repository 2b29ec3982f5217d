// Package columns models the semantic role of every column of a data cube
// table and resolves those roles from declarative configuration.
//
// A raw column configuration is whatever a configuration document holds for a
// column title: nothing at all, the boolean false, or a mapping using the keys
//
//	dimension, value, parent, description, label, attribute,
//	unit, measure, datatype, source, codelist, types
//
// # Resolution order
//
// Resolve tries the following rules in order; the first match wins:
//  1. false                                  -> suppressed
//  2. dimension + value                      -> existing dimension, or a measure
//     type when dimension is qb:measureType
//  3. any of parent, description, label      -> new dimension
//  4. attribute + value                      -> attribute
//  5. unit + measure, or datatype            -> observed value
//  6. absent, true or a non-mapping value    -> new dimension with no metadata
//
// A mapping matching none of the rules is an error.
//
// # Table consistency
//
// ResolveTable resolves every column of one table and then enforces that the
// table has exactly one observed value column. When that column does not name
// its measure, the table must have exactly one measure type column whose value
// URI is copied onto the observed value.
package columns
