package access

import (
	"github.com/quickwritereader/CapWire/wire"
)

// AnyRef is the result of resolving a pointer whose static type is unknown
// at the call site. Exactly one of Struct or List is non-nil, decided
// purely from the decoded pointer word: a generic struct view sized from
// the pointer's own data/pointer word counts, or a generic list view sized
// from its size tag and count.
type AnyRef struct {
	Struct *StructReader
	List   *ListReader
}

// Kind returns the pointer kind the reference resolved to.
func (a *AnyRef) Kind() wire.Kind {
	if a.Struct != nil {
		return wire.KindStruct
	}
	return wire.KindList
}

// ReadAny dereferences the pointer at the given relative offset without
// static type knowledge. A null pointer yields (nil, nil).
func (r Reader) ReadAny(off int) (*AnyRef, error) {
	ptrAbs := r.off + off
	w, content, err := r.resolveAt(ptrAbs)
	if err != nil {
		return nil, err
	}
	if w.IsNull() {
		return nil, nil
	}
	switch w.Kind() {
	case wire.KindStruct:
		nr, err := NewReader(r.buf, content, r.segs)
		if err != nil {
			return nil, err
		}
		return &AnyRef{Struct: &StructReader{Reader: nr, dataWords: w.DataWords(), ptrWords: w.PtrWords()}}, nil
	case wire.KindList:
		l, err := r.newListReader(ptrAbs, w, content)
		if err != nil {
			return nil, err
		}
		return &AnyRef{List: l}, nil
	default:
		return nil, &DecodeError{Off: ptrAbs, Kind: w.Kind(), Reason: "expected struct or list pointer"}
	}
}
