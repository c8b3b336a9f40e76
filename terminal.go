package linq

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Count returns the number of elements of s that match pred, or the number of all elements if pred is omitted.
func (s Sequence[T]) Count(pred ...Predicate[T]) int {
	match := predicateOf(pred)

	count := 0

	for elem := range s.Seq() {
		if match(elem) {
			count++
		}
	}

	return count
}

// LongCount is like Count, but returns an int64.
func (s Sequence[T]) LongCount(pred ...Predicate[T]) int64 {
	match := predicateOf(pred)

	count := int64(0)

	for elem := range s.Seq() {
		if match(elem) {
			count++
		}
	}

	return count
}

// Any returns true as soon as an element of s matches pred.
// If pred is omitted, it returns true if s produces at least one element, pulling no more than that element.
func (s Sequence[T]) Any(pred ...Predicate[T]) bool {
	match := predicateOf(pred)

	for elem := range s.Seq() {
		if match(elem) {
			return true
		}
	}

	return false
}

// All returns true if pred returns true for all elements of s.
// It stops at the first element that does not match.
func (s Sequence[T]) All(pred Predicate[T]) bool {
	for elem := range s.Seq() {
		if !pred(elem) {
			return false
		}
	}

	return true
}

// Contains returns true if any element of s equals value.
// The comparer, if given, is called with the element first and value second.
func (s Sequence[T]) Contains(value T, comparer ...Comparer[T]) bool {
	equal := comparerOf(comparer)

	return s.Any(func(elem T) bool {
		return equal(elem, value)
	})
}

// Aggregate folds the elements of s from the left, using the first element as the seed.
// It returns ErrEmptySequence if s has no elements.
func (s Sequence[T]) Aggregate(acc func(acc T, elem T) T) (T, error) {
	var result T

	seeded := false

	for elem := range s.Seq() {
		if !seeded {
			result = elem
			seeded = true

			continue
		}

		result = acc(result, elem)
	}

	if !seeded {
		return result, ErrEmptySequence
	}

	return result, nil
}

// AggregateSeed folds the elements of s from the left, starting with seed.
func AggregateSeed[T any, A any](s Sequence[T], seed A, acc func(acc A, elem T) A) A {
	for elem := range s.Seq() {
		seed = acc(seed, elem)
	}

	return seed
}

// AggregateSeedResult folds the elements of s from the left, starting with seed,
// and returns the result of calling result with the final accumulator.
func AggregateSeedResult[T any, A any, U any](s Sequence[T], seed A, acc func(acc A, elem T) A, result func(acc A) U) U {
	return result(AggregateSeed(s, seed, acc))
}

// First returns the first element of s that matches pred, or the first element if pred is omitted.
// It pulls no more elements than needed. It returns ErrNoValueFound if no element matches.
func (s Sequence[T]) First(pred ...Predicate[T]) (T, error) {
	match := predicateOf(pred)

	for elem := range s.Seq() {
		if match(elem) {
			return elem, nil
		}
	}

	var zero T

	return zero, ErrNoValueFound
}

// FirstOrDefault is like First, but returns the zero value of T if no element matches.
func (s Sequence[T]) FirstOrDefault(pred ...Predicate[T]) T {
	elem, err := s.First(pred...)
	return orDefault(elem, err, ErrNoValueFound)
}

// Last returns the last element of s that matches pred, or the last element if pred is omitted.
// It returns ErrNoItemFound if no element matches.
func (s Sequence[T]) Last(pred ...Predicate[T]) (T, error) {
	match := predicateOf(pred)

	var result T

	found := false

	for elem := range s.Seq() {
		if match(elem) {
			result = elem
			found = true
		}
	}

	if !found {
		return result, ErrNoItemFound
	}

	return result, nil
}

// LastOrDefault is like Last, but returns the zero value of T if no element matches.
func (s Sequence[T]) LastOrDefault(pred ...Predicate[T]) T {
	elem, err := s.Last(pred...)
	return orDefault(elem, err, ErrNoItemFound)
}

// Single returns the only element of s that matches pred, or the only element if pred is omitted.
// It returns ErrNoValueFound if no element matches, and ErrMultipleValuesFound as soon as a second
// element matches.
func (s Sequence[T]) Single(pred ...Predicate[T]) (T, error) {
	match := predicateOf(pred)

	var result T

	found := false

	for elem := range s.Seq() {
		if !match(elem) {
			continue
		}

		if found {
			var zero T
			return zero, ErrMultipleValuesFound
		}

		result = elem
		found = true
	}

	if !found {
		return result, ErrNoValueFound
	}

	return result, nil
}

// SingleOrDefault is like Single, but returns the zero value of T if no element matches.
// It still returns ErrMultipleValuesFound if more than one element matches.
func (s Sequence[T]) SingleOrDefault(pred ...Predicate[T]) (T, error) {
	elem, err := s.Single(pred...)
	if errors.Is(err, ErrNoValueFound) {
		return elem, nil
	}

	return elem, err
}

// ElementAt returns the element of s at the 0-based index.
// It returns ErrIndexNotFound if index is negative or s has no more than index elements.
func (s Sequence[T]) ElementAt(index int) (T, error) {
	var zero T

	if index < 0 {
		return zero, errors.Wrapf(ErrIndexNotFound, "index %d", index)
	}

	i := 0

	for elem := range s.Seq() {
		if i == index {
			return elem, nil
		}

		i++
	}

	return zero, errors.Wrapf(ErrIndexNotFound, "index %d of %d elements", index, i)
}

// ElementAtOrDefault is like ElementAt, but returns the zero value of T if the index is out of range.
func (s Sequence[T]) ElementAtOrDefault(index int) T {
	elem, err := s.ElementAt(index)
	return orDefault(elem, err, ErrIndexNotFound)
}

// SequenceEqual returns true if s and other produce the same number of elements,
// and all pairs of elements are equal according to comparer.
func (s Sequence[T]) SequenceEqual(other Sequence[T], comparer ...Comparer[T]) bool {
	equal := comparerOf(comparer)

	next, stop := iter.Pull(s.Seq())
	defer stop()

	otherNext, otherStop := iter.Pull(other.Seq())
	defer otherStop()

	for {
		elem, ok := next()
		otherElem, otherOK := otherNext()

		if ok != otherOK {
			return false
		}

		if !ok {
			return true
		}

		if !equal(elem, otherElem) {
			return false
		}
	}
}

// orDefault returns elem if err is nil, or the zero value of T if err is notFound.
// Any other error is re-raised as a panic.
func orDefault[T any](elem T, err error, notFound error) T {
	if err == nil {
		return elem
	}

	if !errors.Is(err, notFound) {
		panic(err)
	}

	var zero T

	return zero
}
