package linq

import "context"

// WithContext returns a sequence that produces the elements of s until ctx is done.
// ctx is checked before each element is pulled from s, so a canceled traversal pulls no more elements.
func WithContext[T any](ctx context.Context, s Sequence[T]) Sequence[T] {
	return From(func(yield func(T) bool) {
		if contextDone(ctx) {
			return
		}

		for elem := range s.Seq() {
			if !yield(elem) || contextDone(ctx) {
				return
			}
		}
	})
}

func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}
