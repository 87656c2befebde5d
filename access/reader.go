// Package access materializes typed read-only views over a CapWire message
// buffer. A Reader is a (buffer, absolute offset, segment table) triple; it
// never copies or mutates the underlying bytes, so any number of readers
// derived from one message may be used concurrently.
package access

import (
	"encoding/binary"
	"math"

	"github.com/quickwritereader/CapWire/wire"
)

// Reader is the base accessor. Field offsets passed to its methods are
// byte offsets relative to the reader's own absolute offset, as defined by
// the record's static layout.
type Reader struct {
	buf  []byte
	off  int
	segs *SegmentTable
}

// NewReader constructs a reader over buf at the given absolute byte offset.
func NewReader(buf []byte, off int, segs *SegmentTable) (Reader, error) {
	if off < 0 || off >= len(buf) {
		return Reader{}, &BoundsError{Off: off, Need: 1, Len: len(buf)}
	}
	return Reader{buf: buf, off: off, segs: segs}, nil
}

// Offset returns the reader's absolute byte offset within the buffer.
func (r Reader) Offset() int { return r.off }

// Segments returns the segment table the reader resolves far pointers with.
func (r Reader) Segments() *SegmentTable { return r.segs }

func (r Reader) checkRange(abs, need int) error {
	if abs < 0 || abs+need > len(r.buf) {
		return &BoundsError{Off: abs, Need: need, Len: len(r.buf)}
	}
	return nil
}

// ReadUint8 reads an unsigned byte at the given relative offset.
func (r Reader) ReadUint8(off int) (uint8, error) {
	abs := r.off + off
	if err := r.checkRange(abs, 1); err != nil {
		return 0, err
	}
	return r.buf[abs], nil
}

// ReadUint16 reads a little-endian uint16 at the given relative offset.
func (r Reader) ReadUint16(off int) (uint16, error) {
	abs := r.off + off
	if err := r.checkRange(abs, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.buf[abs:]), nil
}

// ReadUint32 reads a little-endian uint32 at the given relative offset.
func (r Reader) ReadUint32(off int) (uint32, error) {
	abs := r.off + off
	if err := r.checkRange(abs, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[abs:]), nil
}

// ReadUint64 reads a little-endian uint64 at the given relative offset.
func (r Reader) ReadUint64(off int) (uint64, error) {
	abs := r.off + off
	if err := r.checkRange(abs, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[abs:]), nil
}

func (r Reader) ReadInt8(off int) (int8, error) {
	v, err := r.ReadUint8(off)
	return int8(v), err
}

func (r Reader) ReadInt16(off int) (int16, error) {
	v, err := r.ReadUint16(off)
	return int16(v), err
}

func (r Reader) ReadInt32(off int) (int32, error) {
	v, err := r.ReadUint32(off)
	return int32(v), err
}

func (r Reader) ReadInt64(off int) (int64, error) {
	v, err := r.ReadUint64(off)
	return int64(v), err
}

// ReadFloat32 reads a little-endian IEEE 754 float32.
func (r Reader) ReadFloat32(off int) (float32, error) {
	bits, err := r.ReadUint32(off)
	return math.Float32frombits(bits), err
}

// ReadFloat64 reads a little-endian IEEE 754 float64.
func (r Reader) ReadFloat64(off int) (float64, error) {
	bits, err := r.ReadUint64(off)
	return math.Float64frombits(bits), err
}

// ReadBit reads one byte and masks out a single bit.
func (r Reader) ReadBit(off int, bitmask uint8) (bool, error) {
	v, err := r.ReadUint8(off)
	return v&bitmask != 0, err
}

// ReadEnum reads a signed 16-bit enum code. Out-of-range codes are a valid
// "unknown" state the caller maps, never a decode failure here.
func (r Reader) ReadEnum(off int) (int16, error) {
	return r.ReadInt16(off)
}

// ReadPtrWord reads the raw pointer word at the given relative offset.
func (r Reader) ReadPtrWord(off int) (wire.Word, error) {
	return r.wordAt(r.off + off)
}

func (r Reader) wordAt(abs int) (wire.Word, error) {
	if err := r.checkRange(abs, wire.WordSize); err != nil {
		return 0, err
	}
	return wire.Word(binary.LittleEndian.Uint64(r.buf[abs:])), nil
}

// resolveAt reads the pointer word at absolute offset ptrAbs and resolves
// far indirection. It returns the resolved struct/list word and the
// absolute byte offset of the content it points at; a null pointer yields
// the zero word.
func (r Reader) resolveAt(ptrAbs int) (wire.Word, int, error) {
	w, err := r.wordAt(ptrAbs)
	if err != nil {
		return 0, 0, err
	}
	if w.IsNull() {
		return 0, 0, nil
	}
	switch w.Kind() {
	case wire.KindStruct, wire.KindList:
		return w, ptrAbs + wire.WordSize + int(w.Offset())*wire.WordSize, nil
	case wire.KindFar:
		return r.resolveFar(w)
	default:
		return 0, 0, &DecodeError{Off: ptrAbs, Kind: w.Kind(), Reason: "reserved pointer kind"}
	}
}

// resolveFar follows a far pointer to its landing pad. For a single far
// pointer the pad holds the real near pointer and content starts one word
// past the pad plus the pad pointer's own relative offset. For a double-far
// pointer the pad is two words: a single far pointer naming the content
// location, then the struct/list tag whose relative offset is ignored.
func (r Reader) resolveFar(far wire.Word) (wire.Word, int, error) {
	base, err := r.segs.Start(far.FarSegment())
	if err != nil {
		return 0, 0, err
	}
	pad := base + far.FarOffset()*wire.WordSize
	first, err := r.wordAt(pad)
	if err != nil {
		return 0, 0, err
	}

	if !far.IsDoubleFar() {
		switch first.Kind() {
		case wire.KindStruct, wire.KindList:
			return first, pad + wire.WordSize + int(first.Offset())*wire.WordSize, nil
		default:
			return 0, 0, &DecodeError{Off: pad, Kind: first.Kind(), Reason: "landing pad must hold a struct or list pointer"}
		}
	}

	if first.Kind() != wire.KindFar || first.IsDoubleFar() {
		return 0, 0, &DecodeError{Off: pad, Kind: first.Kind(), Reason: "double-far landing pad must begin with a single far pointer"}
	}
	tag, err := r.wordAt(pad + wire.WordSize)
	if err != nil {
		return 0, 0, err
	}
	if tag.Kind() != wire.KindStruct && tag.Kind() != wire.KindList {
		return 0, 0, &DecodeError{Off: pad + wire.WordSize, Kind: tag.Kind(), Reason: "double-far tag must be a struct or list pointer"}
	}
	base, err = r.segs.Start(first.FarSegment())
	if err != nil {
		return 0, 0, err
	}
	return tag, base + first.FarOffset()*wire.WordSize, nil
}

// ReadStruct dereferences the struct pointer at the given relative offset.
// A null pointer yields (nil, nil). The returned reader carries the sizes
// declared by the pointer; a struct smaller than the caller expects is not
// an error here, the caller reads missing fields as defaults.
func (r Reader) ReadStruct(off int) (*StructReader, error) {
	ptrAbs := r.off + off
	w, content, err := r.resolveAt(ptrAbs)
	if err != nil {
		return nil, err
	}
	if w.IsNull() {
		return nil, nil
	}
	if w.Kind() != wire.KindStruct {
		return nil, &DecodeError{Off: ptrAbs, Kind: w.Kind(), Reason: "expected struct pointer"}
	}
	nr, err := NewReader(r.buf, content, r.segs)
	if err != nil {
		return nil, err
	}
	return &StructReader{Reader: nr, dataWords: w.DataWords(), ptrWords: w.PtrWords()}, nil
}

// ReadList dereferences the list pointer at the given relative offset.
// A null pointer yields (nil, nil).
func (r Reader) ReadList(off int) (*ListReader, error) {
	ptrAbs := r.off + off
	w, content, err := r.resolveAt(ptrAbs)
	if err != nil {
		return nil, err
	}
	if w.IsNull() {
		return nil, nil
	}
	if w.Kind() != wire.KindList {
		return nil, &DecodeError{Off: ptrAbs, Kind: w.Kind(), Reason: "expected list pointer"}
	}
	return r.newListReader(ptrAbs, w, content)
}

// ReadText dereferences a one-byte-element list and returns its bytes
// excluding the mandatory trailing NUL terminator.
func (r Reader) ReadText(off int) ([]byte, error) {
	raw, err := r.readBlob(off)
	if err != nil || raw == nil {
		return nil, err
	}
	if len(raw) == 0 {
		return raw, nil
	}
	return raw[:len(raw)-1], nil
}

// ReadData dereferences a one-byte-element list and returns the full raw
// byte range.
func (r Reader) ReadData(off int) ([]byte, error) {
	return r.readBlob(off)
}

func (r Reader) readBlob(off int) ([]byte, error) {
	ptrAbs := r.off + off
	w, content, err := r.resolveAt(ptrAbs)
	if err != nil {
		return nil, err
	}
	if w.IsNull() {
		return nil, nil
	}
	if w.Kind() != wire.KindList {
		return nil, &DecodeError{Off: ptrAbs, Kind: w.Kind(), Reason: "expected list pointer"}
	}
	if w.ListTag() != wire.SizeByte1 {
		return nil, &TypeMismatchError{Off: ptrAbs, Want: wire.SizeByte1, Got: w.ListTag()}
	}
	n := w.ListCount()
	if err := r.checkRange(content, n); err != nil {
		return nil, err
	}
	return r.buf[content : content+n : content+n], nil
}
