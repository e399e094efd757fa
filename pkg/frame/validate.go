package frame

import "fmt"

// ColumnLens returns the length of every column of f in schema order.
func ColumnLens[R any](f Frame[R]) []int {
	return f.appendLens(make([]int, 0, f.Width()))
}

// Validate checks that every column of f has Len() entries.
func Validate[R any](f Frame[R]) error {
	want := f.Len()
	for i, n := range ColumnLens(f) {
		if n != want {
			return fmt.Errorf("%w: column %d has %d rows, want %d", ErrRaggedFrame, i, n, want)
		}
	}
	return nil
}
