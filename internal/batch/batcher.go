package batch

import (
	"iter"
	"slices"
)

// Split yields consecutive sub-slices of items of length size; the last one
// may be shorter. It panics if size is not positive.
func Split[T any](items []T, size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("batch: size must be positive")
	}
	return slices.Chunk(items, size)
}

// Count returns how many batches Split yields for n items.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}
