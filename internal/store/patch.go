package store

// Pure slice transforms behind every optimistic patch. Each returns a new
// slice; inputs are never mutated.

func prepend[T any](list []T, items ...T) []T {
	out := make([]T, 0, len(items)+len(list))
	out = append(out, items...)
	return append(out, list...)
}

// mergeWhere applies fn to every element matching the predicate.
func mergeWhere[T any](list []T, match func(T) bool, fn func(T) T) []T {
	out := make([]T, len(list))
	for i, v := range list {
		if match(v) {
			v = fn(v)
		}
		out[i] = v
	}
	return out
}

// dropWhere removes every element matching the predicate. Leaves the list
// unchanged when nothing matches.
func dropWhere[T any](list []T, match func(T) bool) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if !match(v) {
			out = append(out, v)
		}
	}
	return out
}
