package linq

// Distinct returns a sequence that produces the elements of s, in order, skipping elements equal to
// an element already produced. Equality is determined by comparer, or DefaultComparer if omitted.
// The comparer is called with the already produced element first.
//
// Without a comparer, elements are tracked in a hash set. With a comparer, every new element is
// compared to every element produced so far.
func (s Sequence[T]) Distinct(comparer ...Comparer[T]) Sequence[T] {
	if len(comparer) == 0 || comparer[0] == nil {
		return s.distinctHashed()
	}

	equal := comparer[0]

	return From(func(yield func(T) bool) {
		seen := []T{}

		for elem := range s.Seq() {
			if containsFunc(seen, elem, equal) {
				continue
			}

			seen = append(seen, elem)

			if !yield(elem) {
				return
			}
		}
	})
}

func (s Sequence[T]) distinctHashed() Sequence[T] {
	return From(func(yield func(T) bool) {
		seen := map[any]struct{}{}

		for elem := range s.Seq() {
			if _, ok := seen[elem]; ok {
				continue
			}

			seen[elem] = struct{}{}

			if !yield(elem) {
				return
			}
		}
	})
}

// Except returns a sequence that produces the elements of s that are not equal to any element of other.
// The comparer is called with the element of s first, and the element of other second.
// other is traversed again for each element of s.
func (s Sequence[T]) Except(other Sequence[T], comparer ...Comparer[T]) Sequence[T] {
	equal := comparerOf(comparer)

	return s.Where(func(elem T) bool {
		return !other.Any(func(otherElem T) bool {
			return equal(elem, otherElem)
		})
	})
}

// Intersect returns a sequence that produces the elements of s that are equal to an element of other.
// The comparer is called with the element of s first, and the element of other second.
// other is traversed again for each element of s.
func (s Sequence[T]) Intersect(other Sequence[T], comparer ...Comparer[T]) Sequence[T] {
	equal := comparerOf(comparer)

	return s.Where(func(elem T) bool {
		return other.Any(func(otherElem T) bool {
			return equal(elem, otherElem)
		})
	})
}

// Union returns a sequence that produces the distinct elements of s followed by other.
func (s Sequence[T]) Union(other Sequence[T], comparer ...Comparer[T]) Sequence[T] {
	return s.Concat(other).Distinct(comparer...)
}

func containsFunc[T any](elems []T, elem T, equal Comparer[T]) bool {
	for _, e := range elems {
		if equal(e, elem) {
			return true
		}
	}

	return false
}
