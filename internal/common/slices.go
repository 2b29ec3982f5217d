package common

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Filter returns the elements of s for which keep reports true, in order.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	var out S

	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// CloneStrings returns an independent copy of s, preserving nil.
func CloneStrings(s []string) []string {
	if s == nil {
		return nil
	}

	out := make([]string, len(s))
	copy(out, s)

	return out
}
