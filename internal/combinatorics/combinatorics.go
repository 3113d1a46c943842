// Package combinatorics adapts gonum's stat/combin index enumerators to the
// element types used by the layout symmetry groups and the arguments
// generator: ordered k-variations, full permutations and cartesian products.
//
// combin works on index lists; the helpers here map indices onto elements and
// expose the result as range-over-func iterators. Slices handed to yield are
// reused between iterations; callers that retain them must copy.
package combinatorics

import (
	"iter"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// Variations yields every ordered selection of k distinct elements of items,
// in lexicographic order of their indices. For k == 0 a single empty
// selection is produced; for k < 0 or k > len(items) nothing is produced.
//
// Complexity: n!/(n-k)! selections, O(k) work each.
func Variations[T any](items []T, k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k < 0 || k > len(items) {
			return
		}
		buf := make([]T, k)
		if k == 0 {
			yield(buf)
			return
		}
		for _, idx := range lexicographic(combin.Permutations(len(items), k)) {
			for i, j := range idx {
				buf[i] = items[j]
			}
			if !yield(buf) {
				return
			}
		}
	}
}

// Permutations returns all permutations of {0..n-1} in lexicographic order.
// The identity permutation is always first.
func Permutations(n int) [][]int {
	if n <= 0 {
		return [][]int{{}}
	}

	return lexicographic(combin.Permutations(n, n))
}

// Product yields the cartesian product of sets: one element from each set, the
// last set varying fastest. An empty sets slice yields one empty tuple; any
// empty set makes the product empty.
func Product[T any](sets [][]T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		buf := make([]T, len(sets))
		if len(sets) == 0 {
			yield(buf)
			return
		}
		lens := make([]int, len(sets))
		for i, s := range sets {
			if len(s) == 0 {
				return
			}
			lens[i] = len(s)
		}

		gen := combin.NewCartesianGenerator(lens)
		idx := make([]int, len(sets))
		for gen.Next() {
			idx = gen.Product(idx)
			for i, j := range idx {
				buf[i] = sets[i][j]
			}
			if !yield(buf) {
				return
			}
		}
	}
}

// lexicographic sorts index lists in place; combin does not promise an order.
func lexicographic(lists [][]int) [][]int {
	slices.SortFunc(lists, slices.Compare[[]int])

	return lists
}
