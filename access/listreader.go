package access

import (
	"math"

	"github.com/quickwritereader/CapWire/wire"
)

// ListReader is a Reader positioned at the first element of a list, with
// the element size tag and corrected element count from the originating
// pointer. For composite lists the per-element stride and struct sizes come
// from the tag word preceding the list body.
type ListReader struct {
	Reader
	tag      wire.SizeTag
	count    int
	stride   int // bytes per element; 0 for void, bit and zero-size composite
	elemData uint16
	elemPtrs uint16
}

func (r Reader) newListReader(ptrAbs int, w wire.Word, content int) (*ListReader, error) {
	tag := w.ListTag()
	count := w.ListCount()
	var elemData, elemPtrs uint16
	stride := tag.ByteStride()

	if tag == wire.SizeComposite {
		tw, err := r.wordAt(content)
		if err != nil {
			return nil, err
		}
		if tw.Kind() != wire.KindStruct {
			return nil, &DecodeError{Off: content, Kind: tw.Kind(), Reason: "composite list tag must be a struct pointer"}
		}
		elems := int(tw.Offset())
		strideWords := int(tw.DataWords()) + int(tw.PtrWords())
		if elems < 0 || elems*strideWords > count {
			return nil, &DecodeError{Off: content, Kind: tw.Kind(), Reason: "composite element count exceeds declared body words"}
		}
		content += wire.WordSize
		count = elems
		stride = strideWords * wire.WordSize
		elemData = tw.DataWords()
		elemPtrs = tw.PtrWords()
	}

	nr, err := NewReader(r.buf, content, r.segs)
	if err != nil {
		return nil, err
	}
	return &ListReader{
		Reader:   nr,
		tag:      tag,
		count:    count,
		stride:   stride,
		elemData: elemData,
		elemPtrs: elemPtrs,
	}, nil
}

// NewListReader constructs a list view with explicitly supplied size tag
// and element count, for hosts with out-of-band knowledge. Composite lists
// must be reached through a pointer instead, since their geometry lives in
// the tag word.
func NewListReader(buf []byte, off int, segs *SegmentTable, tag wire.SizeTag, count int) (*ListReader, error) {
	if tag == wire.SizeComposite {
		return nil, &DecodeError{Off: off, Kind: wire.KindList, Reason: "composite list requires its tag word"}
	}
	r, err := NewReader(buf, off, segs)
	if err != nil {
		return nil, err
	}
	return &ListReader{Reader: r, tag: tag, count: count, stride: tag.ByteStride()}, nil
}

// Len returns the element count.
func (l *ListReader) Len() int { return l.count }

// Tag returns the element size tag.
func (l *ListReader) Tag() wire.SizeTag { return l.tag }

// Stride returns the per-element stride in bytes.
func (l *ListReader) Stride() int { return l.stride }

func (l *ListReader) checkIndex(i int) error {
	if i < 0 || i >= l.count {
		return &IndexError{Index: i, Count: l.count}
	}
	return nil
}

func (l *ListReader) checkTag(i int, want wire.SizeTag) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	if l.tag != want {
		return &TypeMismatchError{Off: l.off, Want: want, Got: l.tag}
	}
	return nil
}

// BitAt returns element i of a bit list.
func (l *ListReader) BitAt(i int) (bool, error) {
	if err := l.checkTag(i, wire.SizeBit); err != nil {
		return false, err
	}
	return l.ReadBit(i/8, 1<<(i%8))
}

// Uint8At returns element i of a 1-byte list.
func (l *ListReader) Uint8At(i int) (uint8, error) {
	if err := l.checkTag(i, wire.SizeByte1); err != nil {
		return 0, err
	}
	return l.ReadUint8(i)
}

func (l *ListReader) Int8At(i int) (int8, error) {
	v, err := l.Uint8At(i)
	return int8(v), err
}

// Uint16At returns element i of a 2-byte list.
func (l *ListReader) Uint16At(i int) (uint16, error) {
	if err := l.checkTag(i, wire.SizeByte2); err != nil {
		return 0, err
	}
	return l.ReadUint16(i * 2)
}

func (l *ListReader) Int16At(i int) (int16, error) {
	v, err := l.Uint16At(i)
	return int16(v), err
}

// EnumAt returns element i of a 2-byte list as an enum code.
func (l *ListReader) EnumAt(i int) (int16, error) {
	return l.Int16At(i)
}

// Uint32At returns element i of a 4-byte list.
func (l *ListReader) Uint32At(i int) (uint32, error) {
	if err := l.checkTag(i, wire.SizeByte4); err != nil {
		return 0, err
	}
	return l.ReadUint32(i * 4)
}

func (l *ListReader) Int32At(i int) (int32, error) {
	v, err := l.Uint32At(i)
	return int32(v), err
}

// Uint64At returns element i of an 8-byte list.
func (l *ListReader) Uint64At(i int) (uint64, error) {
	if err := l.checkTag(i, wire.SizeByte8); err != nil {
		return 0, err
	}
	return l.ReadUint64(i * 8)
}

func (l *ListReader) Int64At(i int) (int64, error) {
	v, err := l.Uint64At(i)
	return int64(v), err
}

func (l *ListReader) Float32At(i int) (float32, error) {
	if err := l.checkTag(i, wire.SizeByte4); err != nil {
		return 0, err
	}
	bits, err := l.ReadUint32(i * 4)
	return math.Float32frombits(bits), err
}

func (l *ListReader) Float64At(i int) (float64, error) {
	if err := l.checkTag(i, wire.SizeByte8); err != nil {
		return 0, err
	}
	bits, err := l.ReadUint64(i * 8)
	return math.Float64frombits(bits), err
}

// StructAt returns element i as a struct view. Composite lists yield the
// element in place; pointer lists dereference the element's pointer.
func (l *ListReader) StructAt(i int) (*StructReader, error) {
	if err := l.checkIndex(i); err != nil {
		return nil, err
	}
	switch l.tag {
	case wire.SizeComposite:
		nr, err := NewReader(l.buf, l.off+i*l.stride, l.segs)
		if err != nil {
			return nil, err
		}
		return &StructReader{Reader: nr, dataWords: l.elemData, ptrWords: l.elemPtrs}, nil
	case wire.SizePointer:
		return l.ReadStruct(i * wire.WordSize)
	default:
		return nil, &TypeMismatchError{Off: l.off, Want: wire.SizeComposite, Got: l.tag}
	}
}

// ListAt dereferences element i of a pointer list as a nested list.
func (l *ListReader) ListAt(i int) (*ListReader, error) {
	if err := l.checkTag(i, wire.SizePointer); err != nil {
		return nil, err
	}
	return l.ReadList(i * wire.WordSize)
}

// TextAt dereferences element i of a pointer list as text.
func (l *ListReader) TextAt(i int) ([]byte, error) {
	if err := l.checkTag(i, wire.SizePointer); err != nil {
		return nil, err
	}
	return l.ReadText(i * wire.WordSize)
}

// DataAt dereferences element i of a pointer list as a raw byte blob.
func (l *ListReader) DataAt(i int) ([]byte, error) {
	if err := l.checkTag(i, wire.SizePointer); err != nil {
		return nil, err
	}
	return l.ReadData(i * wire.WordSize)
}

// AnyAt dereferences element i of a pointer list generically.
func (l *ListReader) AnyAt(i int) (*AnyRef, error) {
	if err := l.checkTag(i, wire.SizePointer); err != nil {
		return nil, err
	}
	return l.ReadAny(i * wire.WordSize)
}

// BodyEnd returns the absolute byte offset one past the list body, clipped
// to the buffer.
func (l *ListReader) BodyEnd() int {
	var end int
	if l.tag == wire.SizeBit {
		end = l.off + (l.count+7)/8
	} else {
		end = l.off + l.count*l.stride
	}
	if end > len(l.buf) {
		end = len(l.buf)
	}
	return end
}

// ListIter is a sequential cursor over a list's elements.
type ListIter struct {
	list *ListReader
	pos  int
}

// Iter returns a cursor positioned before the first element.
func (l *ListReader) Iter() *ListIter {
	return &ListIter{list: l, pos: -1}
}

// Next advances the cursor and reports whether an element is available.
func (it *ListIter) Next() bool {
	if it.pos+1 >= it.list.count {
		return false
	}
	it.pos++
	return true
}

// Index returns the cursor's current element index.
func (it *ListIter) Index() int { return it.pos }

func (it *ListIter) Uint64() (uint64, error) { return it.list.Uint64At(it.pos) }

func (it *ListIter) Float64() (float64, error) { return it.list.Float64At(it.pos) }

func (it *ListIter) Text() ([]byte, error) { return it.list.TextAt(it.pos) }

func (it *ListIter) Struct() (*StructReader, error) { return it.list.StructAt(it.pos) }
