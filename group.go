package linq

// Group is a sequence of elements sharing the same key.
type Group[K any, T any] struct {
	Sequence[T]

	// Key is the key shared by all elements of the group.
	Key K
}

// GroupBy returns a sequence of groups of the elements of s, grouped by the keys returned by key.
// Groups are produced in the order their keys first occur in s. Keys are compared using comparer,
// or DefaultComparer if omitted; the comparer is called with the group's key first.
//
// Finding the keys traverses s once, and each group traverses s again when it is traversed.
func GroupBy[T any, K any](s Sequence[T], key func(elem T) K, comparer ...Comparer[K]) Sequence[Group[K, T]] {
	return GroupByElement(s, key, identity[T], comparer...)
}

// GroupByElement is like GroupBy, but maps the elements of each group using elem.
func GroupByElement[T any, K any, E any](s Sequence[T], key func(elem T) K, elem func(elem T) E, comparer ...Comparer[K]) Sequence[Group[K, E]] {
	equal := comparerOf(comparer)

	return From(func(yield func(Group[K, E]) bool) {
		keys := Select(s, key).Distinct(comparer...)

		for groupKey := range keys.Seq() {
			members := s.Where(func(e T) bool {
				return equal(groupKey, key(e))
			})

			grp := Group[K, E]{
				Sequence: Select(members, elem),
				Key:      groupKey,
			}

			if !yield(grp) {
				return
			}
		}
	})
}

// GroupByResult is like GroupByElement, but produces the result of calling result with each group's
// key and elements, instead of the group itself.
func GroupByResult[T any, K any, E any, U any](s Sequence[T], key func(elem T) K, elem func(elem T) E, result func(key K, elems Sequence[E]) U, comparer ...Comparer[K]) Sequence[U] {
	return Select(GroupByElement(s, key, elem, comparer...), func(grp Group[K, E]) U {
		return result(grp.Key, grp.Sequence)
	})
}

// GroupJoin returns a sequence that calls result for each element of outer and the sequence of
// elements of inner with a matching key. Keys are compared using comparer, or DefaultComparer if
// omitted; the comparer is called with the outer key first.
func GroupJoin[O any, I any, K any, U any](outer Sequence[O], inner Sequence[I], outerKey func(elem O) K, innerKey func(elem I) K, result func(outer O, inner Sequence[I]) U, comparer ...Comparer[K]) Sequence[U] {
	matching := innerMatcher(inner, outerKey, innerKey, comparerOf(comparer))

	return Select(outer, func(o O) U {
		return result(o, matching(o))
	})
}

// Join returns a sequence that calls result for each pair of elements of outer and inner with
// matching keys, in the order of outer, then inner. Keys are compared using comparer, or
// DefaultComparer if omitted; the comparer is called with the outer key first.
func Join[O any, I any, K any, U any](outer Sequence[O], inner Sequence[I], outerKey func(elem O) K, innerKey func(elem I) K, result func(outer O, inner I) U, comparer ...Comparer[K]) Sequence[U] {
	matching := innerMatcher(inner, outerKey, innerKey, comparerOf(comparer))

	return SelectManyResult(outer, func(o O, _ int) Sequence[I] {
		return matching(o)
	}, result)
}

// innerMatcher returns a function that returns the elements of inner whose key matches the key of an outer element.
func innerMatcher[O any, I any, K any](inner Sequence[I], outerKey func(elem O) K, innerKey func(elem I) K, equal Comparer[K]) func(o O) Sequence[I] {
	return func(o O) Sequence[I] {
		key := outerKey(o)

		return inner.Where(func(i I) bool {
			return equal(key, innerKey(i))
		})
	}
}

func identity[T any](elem T) T {
	return elem
}
