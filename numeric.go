package linq

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of element types supported by Sum and Average.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the smallest element of s.
// It returns ErrEmptyNumericReduction if s has no elements.
func Min[T constraints.Ordered](s Sequence[T]) (T, error) {
	return reduceNumeric(s, func(acc T, elem T) T {
		if elem < acc {
			return elem
		}

		return acc
	})
}

// Max returns the largest element of s.
// It returns ErrEmptyNumericReduction if s has no elements.
func Max[T constraints.Ordered](s Sequence[T]) (T, error) {
	return reduceNumeric(s, func(acc T, elem T) T {
		if elem > acc {
			return elem
		}

		return acc
	})
}

// Sum returns the sum of all elements of s.
// It returns ErrEmptyNumericReduction if s has no elements.
func Sum[T Number](s Sequence[T]) (T, error) {
	return reduceNumeric(s, func(acc T, elem T) T {
		return acc + elem
	})
}

// Average returns the arithmetic mean of all elements of s. It returns NaN if s has no elements.
func Average[T Number](s Sequence[T]) float64 {
	elems := s.ToSlice()

	if len(elems) == 0 {
		return math.NaN()
	}

	sum := float64(0)
	for _, elem := range elems {
		sum += float64(elem)
	}

	return sum / float64(len(elems))
}

func reduceNumeric[T any](s Sequence[T], acc func(acc T, elem T) T) (T, error) {
	elems := s.ToSlice()

	if len(elems) == 0 {
		var zero T
		return zero, ErrEmptyNumericReduction
	}

	result := elems[0]
	for _, elem := range elems[1:] {
		result = acc(result, elem)
	}

	return result, nil
}
