// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roster

// PageSize is the fixed number of rows per page.
const PageSize = 10

// TotalPages returns ceil(n / size). An empty collection has zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns items[(page-1)*size : (page-1)*size+size], clipped to the
// slice bounds. Pages outside [1, TotalPages] yield an empty slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end:end]
}
