// Package frame stores fixed-schema records column by column.
//
// A schema is a Go type built by nesting Cons around Nil:
//
//	type Planet = frame.Cons[float64, frame.Cons[float64, frame.Cons[bool, frame.Nil]]]
//
// The same nesting drives the storage side: Cons[H, T] is stored by a
// ConsFrame holding a []H column plus the frame of T, and Nil by a NilFrame.
// A row and its frame can never disagree on the schema because both are
// derived from one type.
package frame

// Row is implemented by every schema-level row type. NewFrame returns an
// empty frame whose row type is exactly R.
type Row[R any] interface {
	NewFrame() Frame[R]
}

// Nil is the zero-field row that terminates every schema.
type Nil struct{}

func (Nil) NewFrame() Frame[Nil] {
	return &NilFrame{}
}

// Cons is one field prepended to a smaller row.
type Cons[H any, T Row[T]] struct {
	Head H
	Tail T
}

func (Cons[H, T]) NewFrame() Frame[Cons[H, T]] {
	var tail T
	return &ConsFrame[H, T]{tail: tail.NewFrame()}
}

// Prepend builds a row with h in front of tail.
func Prepend[H any, T Row[T]](h H, tail T) Cons[H, T] {
	return Cons[H, T]{Head: h, Tail: tail}
}

// NewFrame returns an empty frame for the schema R.
func NewFrame[R Row[R]]() Frame[R] {
	var r R
	return r.NewFrame()
}

// Width reports the number of fields in the schema R.
func Width[R Row[R]]() int {
	return NewFrame[R]().Width()
}
