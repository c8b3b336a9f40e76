// Package linq provides lazy, composable queries over sequences of elements.
//
// A Sequence wraps a production step: an iter.Seq that produces the elements of the
// sequence each time it is invoked. Sequences are constructed from slices, channels,
// or any arbitrary iter.Seq, using From, Of, FromSlice, FromChannel, Range, or Repeat.
//
// Elements may then be operated upon using filtering, projection, joining, grouping,
// ordering, and set operations. Every operator returns a new Sequence and never
// modifies its receiver. Operators whose result type differs from the element type
// (Select, GroupBy, Join, OrderBy, ...) are package functions, the others are methods.
//
// Finally, the elements are consumed by terminal operations, such as collecting them
// into slices or maps, counting them, aggregating them, or finding single elements.
//
// Sequences are always lazy, meaning that nothing is produced until a terminal operation
// pulls elements through the pipeline, one at a time. Each terminal operation re-invokes
// the production step from scratch, so enumerating the same Sequence twice re-runs the
// whole upstream chain, including any side effects of callbacks.
//
// Callbacks are plain functions. A callback that panics aborts the terminal operation
// that pulled the element; the panic is not recovered by this package.
package linq
