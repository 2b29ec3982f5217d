package common

// DeepCopy returns an independent copy of a value produced by a YAML or JSON
// decoder into `any`. Maps and slices are copied recursively; scalars are
// returned as-is since they are immutable.
func DeepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = DeepCopy(e)
		}

		return out
	case map[any]any:
		out := make(map[any]any, len(t))
		for k, e := range t {
			out[k] = DeepCopy(e)
		}

		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = DeepCopy(e)
		}

		return out
	case []string:
		return CloneStrings(t)
	default:
		return v
	}
}
