package frame

import (
	"iter"
	"log/slog"
	"slices"
)

// Mapper converts between a user record type U and its row form R. Both
// functions must be total and free of side effects.
type Mapper[U any, R Row[R]] struct {
	ToRow   func(U) R
	FromRow func(R) U
}

// Load builds a frame holding every record of records, in order.
func Load[U any, R Row[R]](m Mapper[U, R], records iter.Seq[U]) Frame[R] {
	f := NewFrame[R]()
	for rec := range records {
		f.Push(m.ToRow(rec))
	}
	slog.Debug("frame: load done", "rows", f.Len(), "width", f.Width())
	return f
}

// LoadSlice is Load for a slice, reserving column capacity up front.
func LoadSlice[U any, R Row[R]](m Mapper[U, R], records []U) Frame[R] {
	f := NewFrame[R]()
	f.Grow(len(records))
	for _, rec := range records {
		f.Push(m.ToRow(rec))
	}
	slog.Debug("frame: load done", "rows", f.Len(), "width", f.Width())
	return f
}

// Records consumes f and yields each stored row converted back to U.
func Records[U any, R Row[R]](f Frame[R], m Mapper[U, R]) iter.Seq[U] {
	it := IntoIter(f)
	return func(yield func(U) bool) {
		for row := range it.All() {
			if !yield(m.FromRow(row)) {
				return
			}
		}
	}
}

// AppendRecords drains Records(f, m) into dst.
func AppendRecords[U any, R Row[R]](dst []U, f Frame[R], m Mapper[U, R]) []U {
	return slices.AppendSeq(dst, Records(f, m))
}
