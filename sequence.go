package linq

import "iter"

// Sequence is a lazy sequence of elements of type T.
// The zero value is an empty sequence.
type Sequence[T any] struct {
	step iter.Seq[T]
}

// Predicate returns true if elem matches a condition.
type Predicate[T any] func(elem T) bool

// IndexedPredicate returns true if elem matches a condition.
// The index is the 0-based index of elem, in the order produced by the upstream sequence.
type IndexedPredicate[T any] func(elem T, index int) bool

// Comparer returns true if a and b are logically equal.
type Comparer[T any] func(a T, b T) bool

// CompareFunc returns a negative number if a sorts before b, a positive number if a sorts after b,
// and zero if they sort the same.
type CompareFunc[T any] func(a T, b T) int

// From returns a sequence whose production step is src.
// Every traversal of the sequence invokes src again.
func From[T any](src iter.Seq[T]) Sequence[T] {
	return Sequence[T]{step: src}
}

// Seq returns the production step of s. Each call of the returned function is an
// independent traversal that re-runs the whole upstream chain.
func (s Sequence[T]) Seq() iter.Seq[T] {
	if s.step == nil {
		return func(func(T) bool) {}
	}

	return s.step
}

// DefaultComparer compares a and b using ==, on their dynamic values.
// It panics if the dynamic type of the elements is not comparable.
func DefaultComparer[T any](a T, b T) bool {
	return any(a) == any(b)
}

// comparerOf returns the first comparer, or DefaultComparer if none is given.
func comparerOf[T any](comparer []Comparer[T]) Comparer[T] {
	if len(comparer) > 0 && comparer[0] != nil {
		return comparer[0]
	}

	return DefaultComparer[T]
}

// predicateOf returns the first predicate, or a predicate that matches everything if none is given.
func predicateOf[T any](pred []Predicate[T]) Predicate[T] {
	if len(pred) > 0 && pred[0] != nil {
		return pred[0]
	}

	return func(T) bool {
		return true
	}
}
