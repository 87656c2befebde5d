package access

import (
	"encoding/binary"

	"github.com/quickwritereader/CapWire/wire"
)

// msg assembles test message buffers word by word.
type msg struct {
	buf    []byte
	starts []int
}

func newMsg() *msg {
	m := &msg{}
	m.starts = append(m.starts, 0)
	return m
}

// seg starts a new segment at the current position.
func (m *msg) seg() *msg {
	m.starts = append(m.starts, len(m.buf))
	return m
}

// word appends one pointer word.
func (m *msg) word(w wire.Word) *msg {
	return m.u64(uint64(w))
}

// u64 appends one little-endian data word.
func (m *msg) u64(v uint64) *msg {
	var b [wire.WordSize]byte
	binary.LittleEndian.PutUint64(b[:], v)
	m.buf = append(m.buf, b[:]...)
	return m
}

// raw appends bytes zero-padded to the next word boundary.
func (m *msg) raw(p ...byte) *msg {
	m.buf = append(m.buf, p...)
	for len(m.buf)%wire.WordSize != 0 {
		m.buf = append(m.buf, 0)
	}
	return m
}

func (m *msg) table() *SegmentTable {
	return NewSegmentTable(m.starts...)
}

func (m *msg) reader() Reader {
	r, err := NewReader(m.buf, 0, m.table())
	if err != nil {
		panic(err)
	}
	return r
}
