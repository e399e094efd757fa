package frame

import "slices"

// ConsFrame stores the column for the first field of a schema and
// delegates the remaining fields to its tail frame.
type ConsFrame[H any, T Row[T]] struct {
	head []H
	tail Frame[T]
}

func (f *ConsFrame[H, T]) Push(row Cons[H, T]) {
	f.head = append(f.head, row.Head)
	f.tail.Push(row.Tail)
}

// Row checks bounds on the head column only; Push keeps the tail columns
// at the same length.
func (f *ConsFrame[H, T]) Row(index int) (Cons[H, T], bool) {
	if index < 0 || index >= len(f.head) {
		return Cons[H, T]{}, false
	}
	tail, ok := f.tail.Row(index)
	if !ok {
		return Cons[H, T]{}, false
	}
	return Cons[H, T]{Head: f.head[index], Tail: tail}, true
}

func (f *ConsFrame[H, T]) Len() int { return len(f.head) }

func (f *ConsFrame[H, T]) Width() int { return 1 + f.tail.Width() }

func (f *ConsFrame[H, T]) Grow(n int) {
	if n <= 0 {
		return
	}
	f.head = slices.Grow(f.head, n)
	f.tail.Grow(n)
}

// Column returns the values of the first field. The slice is clipped, so
// appending to it never writes into the frame; its elements must not be
// modified.
func (f *ConsFrame[H, T]) Column() []H {
	return slices.Clip(f.head)
}

// Tail returns the frame holding the remaining columns.
func (f *ConsFrame[H, T]) Tail() Frame[T] {
	return f.tail
}

func (f *ConsFrame[H, T]) appendLens(dst []int) []int {
	return f.tail.appendLens(append(dst, len(f.head)))
}

func (f *ConsFrame[H, T]) take() Frame[Cons[H, T]] {
	moved := &ConsFrame[H, T]{head: f.head, tail: f.tail.take()}
	f.head = nil
	return moved
}

// Split returns the first column of f and the frame of the remaining ones.
//
//	mass, rest := frame.Split(planets)
//	radius, _ := frame.Split(rest)
func Split[H any, T Row[T]](f Frame[Cons[H, T]]) ([]H, Frame[T]) {
	cf := f.(*ConsFrame[H, T])
	return cf.Column(), cf.tail
}
