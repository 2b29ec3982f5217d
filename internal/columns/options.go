package columns

import (
	"fmt"
	"sort"
)

// Recognized keys of a raw column configuration mapping.
const (
	KeyDimension   = "dimension"
	KeyValue       = "value"
	KeyParent      = "parent"
	KeyDescription = "description"
	KeyLabel       = "label"
	KeyAttribute   = "attribute"
	KeyUnit        = "unit"
	KeyMeasure     = "measure"
	KeyDatatype    = "datatype"
	KeySource      = "source"
	KeyCodelist    = "codelist"
	KeyTypes       = "types"
)

// RecognizedKeys lists every key a raw column configuration may use.
var RecognizedKeys = []string{
	KeyDimension, KeyValue, KeyParent, KeyDescription, KeyLabel, KeyAttribute,
	KeyUnit, KeyMeasure, KeyDatatype, KeySource, KeyCodelist, KeyTypes,
}

// Options is a decoded raw column configuration mapping with typed accessors.
type Options map[string]any

// AsOptions returns raw as Options when it is a mapping. Mappings decoded
// with non-string keys have their keys formatted as strings.
func AsOptions(raw any) (Options, bool) {
	switch m := raw.(type) {
	case Options:
		return m, true
	case map[string]any:
		return Options(m), true
	case map[any]any:
		o := make(Options, len(m))
		for k, v := range m {
			o[fmt.Sprint(k)] = v
		}

		return o, true
	default:
		return nil, false
	}
}

// Has reports whether key is present with a non-null value.
func (o Options) Has(key string) bool {
	v, ok := o[key]

	return ok && v != nil
}

// String returns the value of key as a string. Non-string scalars are
// formatted; a missing or null key yields "".
func (o Options) String(key string) string {
	switch v := o[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// StringSlice returns the elements of a sequence value as strings, preserving
// order. Non-string scalars are formatted as String does; null, mapping and
// sequence elements are skipped. A single string is treated as a one-element
// sequence. Missing keys or other types yield nil.
func (o Options) StringSlice(key string) []string {
	switch v := o[key].(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)

		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			switch e := e.(type) {
			case nil, map[string]any, map[any]any, []any:
			case string:
				out = append(out, e)
			default:
				out = append(out, fmt.Sprint(e))
			}
		}

		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// Codelist returns the codelist reference held by key, which may be a URI or
// a boolean flag.
func (o Options) Codelist(key string) *Codelist {
	switch v := o[key].(type) {
	case nil:
		return nil
	case bool:
		return &Codelist{Enabled: v}
	default:
		return &Codelist{URI: o.String(key), Enabled: true}
	}
}

// Keys returns the keys of o in sorted order.
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// UnknownKeys returns the sorted keys of a raw mapping that are not
// recognized column configuration keys. Non-mapping values have none.
func UnknownKeys(raw any) []string {
	o, ok := AsOptions(raw)
	if !ok {
		return nil
	}

	known := make(map[string]struct{}, len(RecognizedKeys))
	for _, k := range RecognizedKeys {
		known[k] = struct{}{}
	}

	var unknown []string

	for _, k := range o.Keys() {
		if _, ok := known[k]; !ok {
			unknown = append(unknown, k)
		}
	}

	return unknown
}
