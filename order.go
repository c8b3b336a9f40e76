package linq

import (
	"cmp"
	"iter"

	"golang.org/x/exp/slices"
)

// OrderedSequence is a sequence whose elements are sorted by one or more keys.
// K is the type of the key applied last.
type OrderedSequence[K any, T any] struct {
	Sequence[T]

	keyed iter.Seq[keyed[K, T]]
}

// keyed is an element with its last sort key. Elements in the same run tie on all keys applied so far.
type keyed[K any, T any] struct {
	key  K
	elem T
	run  int
}

// OrderBy returns a sequence that produces the elements of s sorted in ascending order of the keys returned by key.
// The sort is stable. The first pull materializes all elements of s.
func OrderBy[T any, K cmp.Ordered](s Sequence[T], key func(elem T) K) OrderedSequence[K, T] {
	return OrderByFunc(s, key, cmp.Compare[K])
}

// OrderByDescending is like OrderBy, but sorts in descending order.
func OrderByDescending[T any, K cmp.Ordered](s Sequence[T], key func(elem T) K) OrderedSequence[K, T] {
	return OrderByDescendingFunc(s, key, cmp.Compare[K])
}

// OrderByFunc is like OrderBy, but compares keys using compare.
func OrderByFunc[T any, K any](s Sequence[T], key func(elem T) K, compare CompareFunc[K]) OrderedSequence[K, T] {
	return newOrdered(func(yield func(keyed[K, T]) bool) {
		elems := Select(s, func(elem T) keyed[K, T] {
			return keyed[K, T]{
				key:  key(elem),
				elem: elem,
			}
		}).ToSlice()

		run := 0
		sortRun(elems, compare, &run)

		for _, elem := range elems {
			if !yield(elem) {
				return
			}
		}
	})
}

// OrderByDescendingFunc is like OrderByFunc, but sorts in descending order.
func OrderByDescendingFunc[T any, K any](s Sequence[T], key func(elem T) K, compare CompareFunc[K]) OrderedSequence[K, T] {
	return OrderByFunc(s, key, descending(compare))
}

// ThenBy returns a sequence that produces the elements of o, additionally sorting elements that tie on all
// previous keys in ascending order of the keys returned by key.
func ThenBy[K any, T any, K2 cmp.Ordered](o OrderedSequence[K, T], key func(elem T) K2) OrderedSequence[K2, T] {
	return ThenByFunc(o, key, cmp.Compare[K2])
}

// ThenByDescending is like ThenBy, but sorts in descending order.
func ThenByDescending[K any, T any, K2 cmp.Ordered](o OrderedSequence[K, T], key func(elem T) K2) OrderedSequence[K2, T] {
	return ThenByDescendingFunc(o, key, cmp.Compare[K2])
}

// ThenByFunc is like ThenBy, but compares keys using compare.
//
// Elements of o are regrouped into runs of elements that tie on all previous keys. Since o is sorted,
// runs are adjacent. Each run is sorted by the new key, and runs are produced in their previous order.
func ThenByFunc[K any, T any, K2 any](o OrderedSequence[K, T], key func(elem T) K2, compare CompareFunc[K2]) OrderedSequence[K2, T] {
	return newOrdered(func(yield func(keyed[K2, T]) bool) {
		run := 0

		bucket := []keyed[K2, T]{}
		bucketRun := 0

		flush := func() bool {
			sortRun(bucket, compare, &run)

			for _, elem := range bucket {
				if !yield(elem) {
					return false
				}
			}

			bucket = bucket[:0]

			return true
		}

		for elem := range o.keyedSeq() {
			if len(bucket) > 0 && elem.run != bucketRun && !flush() {
				return
			}

			bucketRun = elem.run

			bucket = append(bucket, keyed[K2, T]{
				key:  key(elem.elem),
				elem: elem.elem,
			})
		}

		flush()
	})
}

// ThenByDescendingFunc is like ThenByFunc, but sorts in descending order.
func ThenByDescendingFunc[K any, T any, K2 any](o OrderedSequence[K, T], key func(elem T) K2, compare CompareFunc[K2]) OrderedSequence[K2, T] {
	return ThenByFunc(o, key, descending(compare))
}

// Pairs returns the elements of o together with the keys they were last sorted by.
func (o OrderedSequence[K, T]) Pairs() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for elem := range o.keyedSeq() {
			if !yield(elem.key, elem.elem) {
				return
			}
		}
	}
}

func (o OrderedSequence[K, T]) keyedSeq() iter.Seq[keyed[K, T]] {
	if o.keyed == nil {
		return func(func(keyed[K, T]) bool) {}
	}

	return o.keyed
}

func newOrdered[K any, T any](step iter.Seq[keyed[K, T]]) OrderedSequence[K, T] {
	return OrderedSequence[K, T]{
		Sequence: From(func(yield func(T) bool) {
			for elem := range step {
				if !yield(elem.elem) {
					return
				}
			}
		}),
		keyed: step,
	}
}

// sortRun stably sorts elems by key, and assigns new run numbers starting at *run.
// Adjacent elements get the same run number if their keys compare equal.
func sortRun[K any, T any](elems []keyed[K, T], compare CompareFunc[K], run *int) {
	slices.SortStableFunc(elems, func(a keyed[K, T], b keyed[K, T]) bool {
		return compare(a.key, b.key) < 0
	})

	for i := range elems {
		if i > 0 && compare(elems[i-1].key, elems[i].key) != 0 {
			*run++
		}

		elems[i].run = *run
	}

	*run++
}

func descending[K any](compare CompareFunc[K]) CompareFunc[K] {
	return func(a K, b K) int {
		return -compare(a, b)
	}
}
