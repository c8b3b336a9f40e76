package linq

import (
	"context"
	"iter"
)

// Pair is a pair of elements, as produced by Zip.
type Pair[L any, R any] struct {
	Left  L
	Right R
}

// Of returns a sequence that produces the given elements, in order.
func Of[T any](elems ...T) Sequence[T] {
	return FromSlice(elems)
}

// FromSlice returns a sequence that produces the elements of the given slices, in order.
func FromSlice[T any](slices ...[]T) Sequence[T] {
	return From(func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// FromChannel returns a sequence that produces the elements received through the given channels, in order.
// Channels can only be drained once: traversing the sequence again produces whatever
// elements the channels have not delivered yet.
func FromChannel[T any](channels ...<-chan T) Sequence[T] {
	return From(func(yield func(T) bool) {
		for _, ch := range channels {
			for elem := range ch {
				if !yield(elem) {
					return
				}
			}
		}
	})
}

// Empty returns a sequence that produces no elements.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{}
}

// Range returns a sequence that produces count consecutive integers, starting at start.
func Range(start int, count int) Sequence[int] {
	return From(func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	})
}

// Repeat returns a sequence that produces value count times.
func Repeat[T any](value T, count int) Sequence[T] {
	return From(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Zip returns a sequence that pairs the elements of left and right, in order.
// The new sequence ends as soon as either sequence ends.
func Zip[L any, R any](left Sequence[L], right Sequence[R]) Sequence[Pair[L, R]] {
	return ZipResult(left, right, func(l L, r R) Pair[L, R] {
		return Pair[L, R]{Left: l, Right: r}
	})
}

// ZipResult returns a sequence that calls result for each pair of elements of left and right, in order.
// The new sequence ends as soon as either sequence ends.
func ZipResult[L any, R any, U any](left Sequence[L], right Sequence[R], result func(l L, r R) U) Sequence[U] {
	return From(func(yield func(U) bool) {
		nextLeft, stopLeft := iter.Pull(left.Seq())
		defer stopLeft()

		nextRight, stopRight := iter.Pull(right.Seq())
		defer stopRight()

		for {
			l, ok := nextLeft()
			if !ok {
				return
			}

			r, ok := nextRight()
			if !ok {
				return
			}

			if !yield(result(l, r)) {
				return
			}
		}
	})
}

// ToChannel traverses s in a new goroutine and sends its elements through the returned channel.
// The channel is closed when the traversal ends, or when ctx is canceled.
func ToChannel[T any](ctx context.Context, s Sequence[T]) <-chan T {
	outCh := make(chan T)

	go func() {
		defer close(outCh)

		for elem := range s.Seq() {
			if contextDone(ctx) {
				return
			}

			select {
			case outCh <- elem:

			case <-ctx.Done():
				return
			}
		}
	}()

	return outCh
}
