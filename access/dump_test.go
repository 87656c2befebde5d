package access

import (
	"strings"
	"testing"

	"github.com/quickwritereader/CapWire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	buf := []byte{0x68, 0x69, 0x00, 0xFF, 0x01, 0x02, 0x03, 0x04, 0xAA}

	out := Dump(buf, 0, len(buf))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "00000000: 68 69 00 ff 01 02 03 04  |hi......|", lines[0])
	assert.Equal(t, "00000008: aa                       |.|", lines[1])
}

func TestDump_ClampsRange(t *testing.T) {
	buf := []byte{1, 2, 3}
	out := Dump(buf, -4, 100)
	assert.True(t, strings.HasPrefix(out, "00000000:"))
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestDumpBody(t *testing.T) {
	m := newMsg().
		word(wire.StructWord(0, 1, 0)).
		u64(0x4141414141414141). // body: eight 'A's
		u64(0xFFFFFFFFFFFFFFFF)  // beyond the declared body
	r := m.reader()

	s, err := r.ReadStruct(0)
	require.NoError(t, err)

	out := s.DumpBody()
	assert.Contains(t, out, "AAAAAAAA")
	assert.NotContains(t, out, "ff ff")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestDumpBody_List(t *testing.T) {
	m := newMsg().
		word(wire.ListWord(0, wire.SizeByte1, 3)).
		raw('h', 'i', 0x00)
	r := m.reader()

	l, err := r.ReadList(0)
	require.NoError(t, err)

	out := l.DumpBody()
	assert.Contains(t, out, "68 69 00")
}
