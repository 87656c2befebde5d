package access

import (
	"testing"

	"github.com/quickwritereader/CapWire/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadAny_Struct(t *testing.T) {
	m := newMsg().
		word(wire.StructWord(0, 1, 1)).
		u64(9).
		word(0)
	r := m.reader()

	a, err := r.ReadAny(0)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, wire.KindStruct, a.Kind())
	require.NotNil(t, a.Struct)
	assert.Nil(t, a.List)

	// generic struct views are sized from the pointer itself
	assert.Equal(t, uint16(1), a.Struct.DataWords())
	assert.Equal(t, uint16(1), a.Struct.PtrWords())

	v, err := a.Struct.ReadUint64(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), v)
}

func TestReadAny_List(t *testing.T) {
	m := newMsg().
		word(wire.ListWord(0, wire.SizeByte8, 2)).
		u64(4).
		u64(5)
	r := m.reader()

	a, err := r.ReadAny(0)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, wire.KindList, a.Kind())
	require.NotNil(t, a.List)
	assert.Nil(t, a.Struct)
	assert.Equal(t, 2, a.List.Len())

	v, err := a.List.Uint64At(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v)
}

func TestReadAny_FarIndirection(t *testing.T) {
	m := newMsg().
		word(wire.FarWord(false, 0, 1)).
		seg().
		word(wire.ListWord(0, wire.SizeByte1, 3)).
		raw('o', 'k', 0x00)
	r := m.reader()

	a, err := r.ReadAny(0)
	require.NoError(t, err)
	require.NotNil(t, a.List)
	assert.Equal(t, wire.SizeByte1, a.List.Tag())
	assert.Equal(t, 3, a.List.Len())
}

func TestReadAny_ReservedKind(t *testing.T) {
	m := newMsg().word(wire.Word(3))
	r := m.reader()

	_, err := r.ReadAny(0)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, wire.KindOther, de.Kind)
}

func TestReadAny_InPointerList(t *testing.T) {
	// a heterogeneous pointer list: one struct, one list
	m := newMsg().
		word(wire.ListWord(0, wire.SizePointer, 2)). // word 0
		word(wire.StructWord(1, 1, 0)).              // word 1: -> word 3
		word(wire.ListWord(1, wire.SizeByte8, 1)).   // word 2: -> word 4
		u64(1).                                      // word 3
		u64(2)                                       // word 4
	r := m.reader()

	l, err := r.ReadList(0)
	require.NoError(t, err)

	a0, err := l.AnyAt(0)
	require.NoError(t, err)
	assert.Equal(t, wire.KindStruct, a0.Kind())

	a1, err := l.AnyAt(1)
	require.NoError(t, err)
	assert.Equal(t, wire.KindList, a1.Kind())
}
