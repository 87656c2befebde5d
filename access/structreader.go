package access

import (
	"github.com/quickwritereader/CapWire/wire"
)

// StructReader is a Reader specialized with the data-section and
// pointer-section sizes declared by the pointer it was dereferenced from.
// Keeping a generated accessor's field offsets inside those extents is the
// caller's responsibility; the core only guarantees bounds-safety against
// the buffer itself.
type StructReader struct {
	Reader
	dataWords uint16
	ptrWords  uint16
}

// NewStructReader constructs a struct view with explicitly supplied sizes,
// the way a generic-pointer resolver or a host with out-of-band knowledge
// builds one.
func NewStructReader(buf []byte, off int, segs *SegmentTable, dataWords, ptrWords uint16) (*StructReader, error) {
	r, err := NewReader(buf, off, segs)
	if err != nil {
		return nil, err
	}
	return &StructReader{Reader: r, dataWords: dataWords, ptrWords: ptrWords}, nil
}

// DataWords returns the declared data-section size in words.
func (s StructReader) DataWords() uint16 { return s.dataWords }

// PtrWords returns the declared pointer-section size in words.
func (s StructReader) PtrWords() uint16 { return s.ptrWords }

// PtrSectionOffset returns the relative byte offset where the pointer
// section begins.
func (s StructReader) PtrSectionOffset() int {
	return int(s.dataWords) * wire.WordSize
}

// PtrFieldOffset returns the relative byte offset of pointer slot i.
func (s StructReader) PtrFieldOffset(i int) int {
	return s.PtrSectionOffset() + i*wire.WordSize
}

// HasData reports whether a primitive field of the given width at the given
// relative byte offset lies within the declared data section. Fields beyond
// it were written by an older schema and read as defaults.
func (s StructReader) HasData(off, width int) bool {
	return off >= 0 && off+width <= int(s.dataWords)*wire.WordSize
}

// HasPtr reports whether pointer slot i lies within the declared pointer
// section.
func (s StructReader) HasPtr(i int) bool {
	return i >= 0 && i < int(s.ptrWords)
}

// Group returns a view over the same bytes with the same extents. Groups
// are named subsets of the enclosing struct's own layout and need no
// pointer indirection.
func (s StructReader) Group() StructReader {
	return s
}

// BodyEnd returns the absolute byte offset one past the struct's declared
// body, clipped to the buffer.
func (s StructReader) BodyEnd() int {
	end := s.off + (int(s.dataWords)+int(s.ptrWords))*wire.WordSize
	if end > len(s.buf) {
		end = len(s.buf)
	}
	return end
}
