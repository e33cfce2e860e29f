package query

import "sort"

// filter returns the elements of xs satisfying pred, preserving order.
// The result is never nil.
func filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// indexBy builds a lookup from derived key to row.
// On key collision the later row wins; ids are unique per entity type, so
// collisions only occur for malformed datasets.
func indexBy[T any, K comparable](xs []T, key func(T) K) map[K]T {
	index := make(map[K]T, len(xs))
	for _, x := range xs {
		index[key(x)] = x
	}
	return index
}

// groupBy partitions xs by derived key, preserving order within each group.
func groupBy[T any, K comparable](xs []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, x := range xs {
		k := key(x)
		groups[k] = append(groups[k], x)
	}
	return groups
}

// topN returns a sorted copy of xs truncated to the first n elements.
//
// The sort is stable, and less must impose a total order (callers break
// ties explicitly, usually on id) so repeated runs over the same snapshot
// return identical output. n <= 0 yields an empty slice; n past the end
// yields all of xs sorted.
func topN[T any](xs []T, n int, less func(a, b T) bool) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// sortBy sorts a copy of xs with the given less function (stable).
func sortBy[T any](xs []T, less func(a, b T) bool) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
