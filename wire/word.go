// Package wire decodes the raw 8-byte pointer words of the CapWire format.
//
// Glossary: sizes are expressed in words (8 bytes), lengths in bytes.
package wire

// Kind is the 2-bit pointer kind encoded in the low bits of a word.
type Kind uint8

const (
	KindStruct Kind = 0
	KindList   Kind = 1
	KindFar    Kind = 2
	KindOther  Kind = 3 // reserved; never produced by this decoder's collaborators
)

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindList:
		return "list"
	case KindFar:
		return "far"
	case KindOther:
		return "other"
	default:
		return "invalid"
	}
}

// SizeTag is the 3-bit element width selector of a list pointer.
type SizeTag uint8

const (
	SizeVoid SizeTag = iota
	SizeBit
	SizeByte1
	SizeByte2
	SizeByte4
	SizeByte8
	SizePointer
	SizeComposite
)

// String returns the human-readable name of the size tag
func (t SizeTag) String() string {
	switch t {
	case SizeVoid:
		return "void"
	case SizeBit:
		return "bit"
	case SizeByte1:
		return "1-byte"
	case SizeByte2:
		return "2-byte"
	case SizeByte4:
		return "4-byte"
	case SizeByte8:
		return "8-byte"
	case SizePointer:
		return "pointer"
	case SizeComposite:
		return "composite"
	default:
		return "invalid"
	}
}

// ByteStride returns the per-element stride in bytes, or 0 for the tags
// whose stride is not byte-granular (void, bit, composite).
func (t SizeTag) ByteStride() int {
	switch t {
	case SizeByte1:
		return 1
	case SizeByte2:
		return 2
	case SizeByte4:
		return 4
	case SizeByte8:
		return 8
	case SizePointer:
		return 8
	default:
		return 0
	}
}

// Word is one raw little-endian pointer word. The zero value is the null
// pointer. All accessors are pure bitfield extraction; whether a given
// field is meaningful depends on Kind.
type Word uint64

// WordSize is the base addressing granularity of the format, in bytes.
const WordSize = 8

// IsNull reports whether the word is the all-zero null pointer.
func (w Word) IsNull() bool { return w == 0 }

// Kind returns the pointer kind from the low 2 bits.
func (w Word) Kind() Kind { return Kind(w & 3) }

// Offset returns the signed word offset of a struct or list pointer,
// measured from the word immediately following the pointer.
func (w Word) Offset() int32 { return int32(uint32(w)) >> 2 }

// DataWords returns the data-section size of a struct pointer, in words.
func (w Word) DataWords() uint16 { return uint16(w >> 32) }

// PtrWords returns the pointer-section size of a struct pointer, in words.
func (w Word) PtrWords() uint16 { return uint16(w >> 48) }

// ListTag returns the element size tag of a list pointer.
func (w Word) ListTag() SizeTag { return SizeTag((w >> 32) & 7) }

// ListCount returns the raw 29-bit count field of a list pointer. For
// composite lists this is the body word count, not the element count.
func (w Word) ListCount() int { return int(w >> 35) }

// IsDoubleFar reports whether a far pointer's landing pad is two words.
func (w Word) IsDoubleFar() bool { return w&4 != 0 }

// FarOffset returns the unsigned word offset of a far pointer within its
// target segment.
func (w Word) FarOffset() int { return int(uint32(w) >> 3) }

// FarSegment returns the target segment id of a far pointer.
func (w Word) FarSegment() uint32 { return uint32(w >> 32) }

// StructWord encodes a struct pointer.
func StructWord(off int32, dataWords, ptrWords uint16) Word {
	return Word(KindStruct) | Word(uint32(off)<<2) | Word(dataWords)<<32 | Word(ptrWords)<<48
}

// ListWord encodes a list pointer. For composite lists count is the body
// word count excluding the tag word, otherwise the element count.
func ListWord(off int32, tag SizeTag, count int) Word {
	return Word(KindList) | Word(uint32(off)<<2) | Word(tag)<<32 | Word(count)<<35
}

// FarWord encodes a far pointer to wordOff words into segment seg.
func FarWord(double bool, wordOff int, seg uint32) Word {
	w := Word(KindFar) | Word(uint32(wordOff)<<3) | Word(seg)<<32
	if double {
		w |= 4
	}
	return w
}
