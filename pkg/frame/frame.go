package frame

// Frame is columnar storage for rows of type R: one column per field, all
// columns always of equal length.
//
// Only NilFrame and ConsFrame implement Frame; obtain one with NewFrame.
type Frame[R any] interface {
	// Push appends row, growing every column by exactly one.
	Push(row R)
	// Row rebuilds the row stored at index. It reports false when index
	// is outside [0, Len()).
	Row(index int) (R, bool)
	// Len is the number of stored rows.
	Len() int
	// Width is the number of columns.
	Width() int
	// Grow reserves room for n more rows in every column.
	Grow(n int)

	appendLens(dst []int) []int
	take() Frame[R]
}
