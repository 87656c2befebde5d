package access

// SegmentTable holds the byte offset of each segment's start within the
// message buffer. It is built once when the message is framed, upstream of
// this package, and never mutated afterwards; a nil table is valid for
// single-segment messages that contain no far pointers.
type SegmentTable struct {
	starts []int
}

// NewSegmentTable builds a table from the given segment start offsets, in
// segment-id order.
func NewSegmentTable(starts ...int) *SegmentTable {
	return &SegmentTable{starts: starts}
}

// Count returns the number of segments in the table.
func (t *SegmentTable) Count() int {
	if t == nil {
		return 0
	}
	return len(t.starts)
}

// Start returns the absolute byte offset of segment id within the buffer.
func (t *SegmentTable) Start(id uint32) (int, error) {
	if t == nil || int(id) >= len(t.starts) {
		return 0, &BoundsError{Off: int(id), Len: t.Count(), Table: true}
	}
	return t.starts[id], nil
}
