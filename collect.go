package linq

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// A DuplicateKeyError is returned by ToDictionary and ToDictionaryElement when more than one element
// maps to the same key. It matches both ErrDuplicateKey and ErrMultipleValuesFound.
type DuplicateKeyError[K any] struct {
	// Key is the key that more than one element mapped to.
	Key K

	// Err is the error returned by Single for the key's group.
	Err error
}

// Lookup maps keys to groups of elements, as returned by ToLookup.
type Lookup[K comparable, V any] map[K]Group[K, V]

// HashSet is a set of elements, as returned by ToHashSet.
type HashSet[T comparable] map[T]struct{}

// ToSlice returns all elements of s, in order.
func (s Sequence[T]) ToSlice() []T {
	result := []T{}

	for elem := range s.Seq() {
		result = append(result, elem)
	}

	return result
}

// ToList is the same as ToSlice.
func (s Sequence[T]) ToList() []T {
	return s.ToSlice()
}

// ToDictionary returns a map of the elements of s, keyed by the keys returned by key.
// If more than one element maps to the same key, it returns a *DuplicateKeyError.
func ToDictionary[T any, K comparable](s Sequence[T], key func(elem T) K, comparer ...Comparer[K]) (map[K]T, error) {
	return ToDictionaryElement(s, key, identity[T], comparer...)
}

// ToDictionaryElement is like ToDictionary, but maps the elements using elem.
func ToDictionaryElement[T any, K comparable, V any](s Sequence[T], key func(elem T) K, elem func(elem T) V, comparer ...Comparer[K]) (map[K]V, error) {
	result := map[K]V{}

	for grp := range GroupByElement(s, key, elem, comparer...).Seq() {
		value, err := grp.Single()
		if err != nil {
			return nil, errors.Mark(&DuplicateKeyError[K]{
				Key: grp.Key,
				Err: err,
			}, ErrDuplicateKey)
		}

		result[grp.Key] = value
	}

	return result, nil
}

// ToLookup returns a map of groups of the elements of s, keyed by the keys returned by key.
func ToLookup[T any, K comparable](s Sequence[T], key func(elem T) K, comparer ...Comparer[K]) Lookup[K, T] {
	return ToLookupElement(s, key, identity[T], comparer...)
}

// ToLookupElement is like ToLookup, but maps the elements of each group using elem.
func ToLookupElement[T any, K comparable, V any](s Sequence[T], key func(elem T) K, elem func(elem T) V, comparer ...Comparer[K]) Lookup[K, V] {
	result := Lookup[K, V]{}

	for grp := range GroupByElement(s, key, elem, comparer...).Seq() {
		result[grp.Key] = grp
	}

	return result
}

// ToHashSet returns a set of the elements of s. If comparer is given, elements that are equal
// according to comparer are collapsed first, keeping the first occurrence.
func ToHashSet[T comparable](s Sequence[T], comparer ...Comparer[T]) HashSet[T] {
	if len(comparer) > 0 && comparer[0] != nil {
		s = s.Distinct(comparer[0])
	}

	result := HashSet[T]{}

	for elem := range s.Seq() {
		result[elem] = struct{}{}
	}

	return result
}

// Contains returns true if elem is in the set.
func (h HashSet[T]) Contains(elem T) bool {
	_, ok := h[elem]
	return ok
}

// Error implements error.
func (e *DuplicateKeyError[K]) Error() string {
	return fmt.Sprintf("duplicate key %v: %v", e.Key, e.Err)
}

// Unwrap returns the error returned by Single.
func (e *DuplicateKeyError[K]) Unwrap() error {
	return e.Err
}
