package access

import (
	"fmt"
	"strings"

	"github.com/quickwritereader/CapWire/wire"
)

// Dump renders the byte range [start, end) of buf as word-granular hex
// rows with an ASCII column. Advisory tooling for debugging malformed
// messages, not part of the decoding contract.
func Dump(buf []byte, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(buf) {
		end = len(buf)
	}
	var b strings.Builder
	for off := start; off < end; off += wire.WordSize {
		row := buf[off:min(off+wire.WordSize, end)]
		fmt.Fprintf(&b, "%08x:", off)
		for _, c := range row {
			fmt.Fprintf(&b, " %02x", c)
		}
		b.WriteString(strings.Repeat("   ", wire.WordSize-len(row)))
		b.WriteString("  |")
		for _, c := range row {
			if c >= 0x20 && c < 0x7f {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// Dump renders the buffer from the reader's offset up to end; a negative
// end means the whole buffer.
func (r Reader) Dump(end int) string {
	if end < 0 {
		end = len(r.buf)
	}
	return Dump(r.buf, r.off, end)
}

// DumpBody renders the struct's declared body.
func (s StructReader) DumpBody() string {
	return Dump(s.buf, s.off, s.BodyEnd())
}

// DumpBody renders the list's body.
func (l *ListReader) DumpBody() string {
	return Dump(l.buf, l.off, l.BodyEnd())
}
