package content

import (
	"cmp"
	"slices"
)

// Bucket is the ordered run of items sharing one key.
type Bucket[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy buckets items by key. Buckets come out in the order their key is
// first seen and items keep their input order. Only keys present in the
// input produce a bucket.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Bucket[K, T] {
	index := make(map[K]int)
	var buckets []Bucket[K, T]
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket[K, T]{Key: k})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}
	return buckets
}

// GroupByOrdered is GroupBy with each bucket sorted ascending by order.
// The sort is stable, so equal order values keep their input order.
func GroupByOrdered[T any, K comparable](items []T, key func(T) K, order func(T) int) []Bucket[K, T] {
	buckets := GroupBy(items, key)
	for i := range buckets {
		slices.SortStableFunc(buckets[i].Items, func(a, b T) int {
			return cmp.Compare(order(a), order(b))
		})
	}
	return buckets
}

// Mean returns the arithmetic mean of value over items, rounded half up to
// the nearest integer. ok is false for empty input and nothing is divided.
func Mean[T any](items []T, value func(T) int) (mean int, ok bool) {
	if len(items) == 0 {
		return 0, false
	}
	sum := 0
	for _, item := range items {
		sum += value(item)
	}
	n := len(items)
	// floor(sum/n + 1/2) in integer arithmetic
	return floorDiv(2*sum+n, 2*n), true
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred func(T) bool) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}

// TopN returns the first n items after a stable sort by less. The input
// slice is not modified.
func TopN[T any](items []T, n int, less func(a, b T) bool) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []T{}
	}
	return sorted
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
