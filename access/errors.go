package access

import (
	"fmt"

	"github.com/quickwritereader/CapWire/wire"
)

// BoundsError reports an access whose computed absolute range exceeds the
// message buffer, or a far pointer whose segment id exceeds the segment
// table. Fatal to the single field read, not to the whole message.
type BoundsError struct {
	Off   int  // absolute byte offset (or segment id when Table is set)
	Need  int  // bytes required at Off
	Len   int  // buffer length (or segment count when Table is set)
	Table bool // the segment table was exceeded rather than the buffer
}

func (e *BoundsError) Error() string {
	if e.Table {
		return fmt.Sprintf("segment %d out of range (table has %d segments)", e.Off, e.Len)
	}
	return fmt.Sprintf("read of %d bytes at offset %d exceeds buffer length %d", e.Need, e.Off, e.Len)
}

// DecodeError reports a pointer word whose kind is not interpretable in
// context: the reserved kind, a far pointer where none is permitted, or a
// malformed composite list tag.
type DecodeError struct {
	Off    int // absolute byte offset of the offending word
	Kind   wire.Kind
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected %s pointer at offset %d: %s", e.Kind, e.Off, e.Reason)
}

// TypeMismatchError reports a typed list access whose expected element size
// tag disagrees with the tag the list was encoded with.
type TypeMismatchError struct {
	Off  int // absolute byte offset of the list pointer
	Want wire.SizeTag
	Got  wire.SizeTag
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("list at offset %d has %s elements, want %s", e.Off, e.Got, e.Want)
}

// IndexError reports a list element access at or beyond the element count.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (list has %d elements)", e.Index, e.Count)
}
