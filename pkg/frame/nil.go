package frame

// NilFrame stores the zero-field part of a schema. It has no columns but
// counts pushes, so that a frame over Nil alone still knows its length.
type NilFrame struct {
	n int
}

func (f *NilFrame) Push(Nil) {
	f.n++
}

func (f *NilFrame) Row(index int) (Nil, bool) {
	return Nil{}, index >= 0 && index < f.n
}

func (f *NilFrame) Len() int   { return f.n }
func (f *NilFrame) Width() int { return 0 }
func (f *NilFrame) Grow(int)   {}

func (f *NilFrame) appendLens(dst []int) []int {
	return dst
}

func (f *NilFrame) take() Frame[Nil] {
	moved := &NilFrame{n: f.n}
	f.n = 0
	return moved
}
