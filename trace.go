package linq

import "go.uber.org/zap"

// Trace returns a sequence that produces the same elements as s, logging each element pulled through it
// at debug level, and the end of each traversal. stage names the position in the pipeline.
// A nil logger logs nothing.
func (s Sequence[T]) Trace(logger *zap.Logger, stage string) Sequence[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.String("stage", stage))

	return From(func(yield func(T) bool) {
		index := 0
		stopped := false

		defer func() {
			logger.Debug("traversal ended",
				zap.Int("pulled", index),
				zap.Bool("stopped", stopped),
			)
		}()

		for elem := range s.Seq() {
			logger.Debug("element pulled",
				zap.Int("index", index),
				zap.Any("element", elem),
			)

			index++

			if !yield(elem) {
				stopped = true
				return
			}
		}
	})
}
