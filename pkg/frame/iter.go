package frame

import (
	"iter"
	"slices"
)

// Iterator walks the rows of a frame it owns, in push order. It is single
// pass: once Next reports false it stays exhausted.
type Iterator[R any] struct {
	frame Frame[R]
	pos   int
	done  bool
}

// IntoIter moves the rows of f into a new Iterator. f is left empty and can
// be reused as a fresh frame of the same schema.
func IntoIter[R any](f Frame[R]) *Iterator[R] {
	return &Iterator[R]{frame: f.take()}
}

// Next returns the row at the current position and advances.
func (it *Iterator[R]) Next() (R, bool) {
	if it.done {
		var zero R
		return zero, false
	}
	row, ok := it.frame.Row(it.pos)
	if !ok {
		it.done = true
		it.frame = nil
		return row, false
	}
	it.pos++
	return row, true
}

// All yields the rows Next has not returned yet.
func (it *Iterator[R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		for {
			row, ok := it.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[R any](it *Iterator[R]) []R {
	return slices.Collect(it.All())
}

// Rows scans f without consuming it. Pushing to f while ranging is not
// supported.
func Rows[R any](f Frame[R]) iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		for i := 0; ; i++ {
			row, ok := f.Row(i)
			if !ok || !yield(i, row) {
				return
			}
		}
	}
}
