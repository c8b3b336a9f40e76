package linq

// Select returns a sequence that calls mapp for each element of s, mapping it to type U.
func Select[T any, U any](s Sequence[T], mapp func(elem T) U) Sequence[U] {
	return SelectIndexed(s, func(elem T, _ int) U {
		return mapp(elem)
	})
}

// SelectIndexed returns a sequence that calls mapp for each element of s, mapping it to type U.
// The index is the 0-based index of elem, in the order produced by s.
func SelectIndexed[T any, U any](s Sequence[T], mapp func(elem T, index int) U) Sequence[U] {
	return From(func(yield func(U) bool) {
		index := 0

		for elem := range s.Seq() {
			if !yield(mapp(elem, index)) {
				return
			}

			index++
		}
	})
}

// SelectMany returns a sequence that calls mapp for each element of s, mapping it to an intermediate
// sequence. The new sequence produces all elements of the intermediate sequences, in order.
func SelectMany[T any, U any](s Sequence[T], mapp func(elem T, index int) Sequence[U]) Sequence[U] {
	return SelectManyResult(s, mapp, func(_ T, elem U) U {
		return elem
	})
}

// SelectManyResult is like SelectMany, but calls result for each element of s and each element
// of its intermediate sequence.
func SelectManyResult[T any, C any, U any](s Sequence[T], mapp func(elem T, index int) Sequence[C], result func(elem T, inner C) U) Sequence[U] {
	return From(func(yield func(U) bool) {
		index := 0

		for elem := range s.Seq() {
			for inner := range mapp(elem, index).Seq() {
				if !yield(result(elem, inner)) {
					return
				}
			}

			index++
		}
	})
}

// Where returns a sequence that only produces the elements of s for which pred returns true.
func (s Sequence[T]) Where(pred Predicate[T]) Sequence[T] {
	return s.WhereIndexed(func(elem T, _ int) bool {
		return pred(elem)
	})
}

// WhereIndexed returns a sequence that only produces the elements of s for which pred returns true.
// The index is the 0-based index of elem, in the order produced by s.
func (s Sequence[T]) WhereIndexed(pred IndexedPredicate[T]) Sequence[T] {
	return From(func(yield func(T) bool) {
		index := 0

		for elem := range s.Seq() {
			if pred(elem, index) && !yield(elem) {
				return
			}

			index++
		}
	})
}

// Peek returns a sequence that calls peek for each element of s, in order, and produces the same elements.
func (s Sequence[T]) Peek(peek func(elem T, index int)) Sequence[T] {
	return From(func(yield func(T) bool) {
		index := 0

		for elem := range s.Seq() {
			peek(elem, index)

			if !yield(elem) {
				return
			}

			index++
		}
	})
}

// Take returns a sequence that produces the same elements as s, in order, up to max elements.
// It stops pulling from s as soon as max elements have been produced.
// A negative max produces all elements.
func (s Sequence[T]) Take(max int) Sequence[T] {
	if max < 0 {
		return s
	}

	return From(func(yield func(T) bool) {
		if max == 0 {
			return
		}

		done := 0

		for elem := range s.Seq() {
			if !yield(elem) {
				return
			}

			done++
			if done == max {
				return
			}
		}
	})
}

// Skip returns a sequence that produces the same elements as s, in order, skipping the first num elements.
func (s Sequence[T]) Skip(num int) Sequence[T] {
	return From(func(yield func(T) bool) {
		done := 0

		for elem := range s.Seq() {
			done++
			if done <= num {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	})
}

// TakeWhile returns a sequence that produces the elements of s as long as pred returns true.
// It stops pulling from s at the first element that does not match.
func (s Sequence[T]) TakeWhile(pred Predicate[T]) Sequence[T] {
	return s.TakeWhileIndexed(func(elem T, _ int) bool {
		return pred(elem)
	})
}

// TakeWhileIndexed is like TakeWhile, but also passes the 0-based index of each element to pred.
func (s Sequence[T]) TakeWhileIndexed(pred IndexedPredicate[T]) Sequence[T] {
	return From(func(yield func(T) bool) {
		index := 0

		for elem := range s.Seq() {
			if !pred(elem, index) || !yield(elem) {
				return
			}

			index++
		}
	})
}

// SkipWhile returns a sequence that skips the elements of s as long as pred returns true,
// and then produces all remaining elements.
func (s Sequence[T]) SkipWhile(pred Predicate[T]) Sequence[T] {
	return s.SkipWhileIndexed(func(elem T, _ int) bool {
		return pred(elem)
	})
}

// SkipWhileIndexed is like SkipWhile, but also passes the 0-based index of each element to pred.
func (s Sequence[T]) SkipWhileIndexed(pred IndexedPredicate[T]) Sequence[T] {
	return From(func(yield func(T) bool) {
		index := 0
		passed := false

		for elem := range s.Seq() {
			if !passed {
				if pred(elem, index) {
					index++
					continue
				}

				passed = true
			}

			if !yield(elem) {
				return
			}

			index++
		}
	})
}

// Append returns a sequence that produces the elements of s, followed by elem.
func (s Sequence[T]) Append(elem T) Sequence[T] {
	return s.Concat(Of(elem))
}

// Prepend returns a sequence that produces elem, followed by the elements of s.
func (s Sequence[T]) Prepend(elem T) Sequence[T] {
	return Of(elem).Concat(s)
}

// Concat returns a sequence that produces the elements of s, followed by the elements of the other sequences.
func (s Sequence[T]) Concat(others ...Sequence[T]) Sequence[T] {
	return From(func(yield func(T) bool) {
		for elem := range s.Seq() {
			if !yield(elem) {
				return
			}
		}

		for _, other := range others {
			for elem := range other.Seq() {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// DefaultIfEmpty checks immediately whether s produces any element. If it does, it returns s itself.
// Otherwise, it returns a sequence that produces def, or the zero value of T if def is omitted.
func (s Sequence[T]) DefaultIfEmpty(def ...T) Sequence[T] {
	if s.Any() {
		return s
	}

	var elem T
	if len(def) > 0 {
		elem = def[0]
	}

	return Of(elem)
}

// Reverse returns a sequence that produces the elements of s in reverse order.
// The first pull materializes all elements of s.
func (s Sequence[T]) Reverse() Sequence[T] {
	return From(func(yield func(T) bool) {
		elems := s.ToSlice()

		for i := len(elems) - 1; i >= 0; i-- {
			if !yield(elems[i]) {
				return
			}
		}
	})
}

// TakeLast returns a sequence that produces the last num elements of s, in order.
// If num is not positive, the sequence is empty.
func (s Sequence[T]) TakeLast(num int) Sequence[T] {
	if num <= 0 {
		return Empty[T]()
	}

	return s.Reverse().Take(num).Reverse()
}

// SkipLast returns a sequence that produces all elements of s, in order, except the last num elements.
// If num is not positive, it returns s itself.
func (s Sequence[T]) SkipLast(num int) Sequence[T] {
	if num <= 0 {
		return s
	}

	return s.Reverse().Skip(num).Reverse()
}
