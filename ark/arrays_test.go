package ark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ark-save-parser/reader"
)

// Each of these drives readArrayElements directly with the reader
// positioned exactly where readArrayProperty would leave it: right after
// the element-kind Name and the count field, with dataSize covering the
// count field plus every element (spec.md §4.3).

func TestReadArrayElementsBool(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u8(1).u8(0).u8(1)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "BoolProperty", 3, 4+3)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfBoolValue{true, false, true}, v)
}

func TestReadArrayElementsInt8(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u8(0xFF).u8(2) // -1, 2
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "Int8Property", 2, 4+2)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfI8Value{-1, 2}, v)
}

func TestReadArrayElementsInt16(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.i16(-5).i16(1000)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "Int16Property", 2, 4+4)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfI16Value{-5, 1000}, v)
}

func TestReadArrayElementsInt32(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.i32(1).i32(2).i32(3)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "IntProperty", 3, 4+12)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfI32Value{1, 2, 3}, v)
}

func TestReadArrayElementsByte(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u8(200).u8(1)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "ByteProperty", 2, 4+2)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfU8Value{200, 1}, v)
}

func TestReadArrayElementsUInt16(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u16(1).u16(65535)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "UInt16Property", 2, 4+4)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfU16Value{1, 65535}, v)
}

func TestReadArrayElementsUInt32(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u32(1).u32(4000000000)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "UInt32Property", 2, 4+8)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfU32Value{1, 4000000000}, v)
}

func TestReadArrayElementsUInt64(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u64(1).u64(18000000000000000000)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "UInt64Property", 2, 4+16)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfU64Value{1, 18000000000000000000}, v)
}

func TestReadArrayElementsFloat(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.f32(1.5).f32(-2.5)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "FloatProperty", 2, 4+8)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfF32Value{1.5, -2.5}, v)
}

func TestReadArrayElementsDouble(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.f64(1.5).f64(-2.5)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "DoubleProperty", 2, 4+16)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfF64Value{1.5, -2.5}, v)
}

func TestReadArrayElementsStr(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.str("alpha").str("beta")
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "StrProperty", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfStrValue{"alpha", "beta"}, v)
}

func TestReadArrayElementsNamePropertyIsF32Quirk(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.f32(1.5).f32(2.5)
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "NameProperty", 2, 4+8)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfF32Value{1.5, 2.5}, v)
}

func TestReadArrayElementsObject(t *testing.T) {
	names := buildTestNames("Target")
	targetID, ok := names.IDOf("Target")
	require.True(t, ok)

	w := newByteWriter()
	w.u32(0).i32(5)          // kind 0: Int(5)
	w.u32(1).name(targetID, 0) // kind 1: Name("Target")
	r := reader.NewSliceReader(w.bytes())

	v, err := readArrayElements(r, names, "ObjectProperty", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfObjectValue{IntValue(5), NameValue("Target")}, v)
}

func TestReadArrayElementsObjectUnknownKind(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u32(9) // unrecognized per-element kind
	r := reader.NewSliceReader(w.bytes())

	_, err := readArrayElements(r, names, "ObjectProperty", 1, 0)
	assert.ErrorIs(t, err, ErrUnknownObjectPropertyKind)
}

func TestReadArrayElementsUnknownKindSkipsPayload(t *testing.T) {
	names := buildTestNames()
	// count (4 bytes) already consumed by the caller in the real pipeline;
	// only the remaining dataSize-4 bytes of filler are left to skip.
	filler := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r := reader.NewSliceReader(filler)

	v, err := readArrayElements(r, names, "SomeUnsupportedProperty", 0, uint32(len(filler)+4))
	require.NoError(t, err)
	assert.Equal(t, ArrayOfI32Value{}, v)

	pos, err := r.Pos()
	require.NoError(t, err)
	assert.Equal(t, int64(len(filler)), pos)
}

func TestReadArrayElementsStructPropertyDelegates(t *testing.T) {
	names := buildTestNames("Foo")
	w := newByteWriter()
	w.propHeader(names, "Foo", "IntProperty", 4, 0)
	w.i32(1)
	w.terminator(names)
	r := reader.NewSliceReader(w.bytes())

	// stride = (dataSize-4)/4/n; pick values that land outside {1,3,4} so
	// this exercises the nested-properties default branch via dispatch.
	v, err := readArrayElements(r, names, "StructProperty", 1, 12)
	require.NoError(t, err)
	arr, ok := v.(ArrayOfStructValue)
	require.True(t, ok)
	require.Len(t, arr, 1)
	pv, ok := arr[0].(PropertiesValue)
	require.True(t, ok)
	got, ok := pv.Properties.Get("Foo")
	require.True(t, ok)
	assert.Equal(t, IntValue(1), got)
}

func TestReadStructArrayEmpty(t *testing.T) {
	names := buildTestNames()
	r := reader.NewSliceReader(nil)
	v, err := readStructArray(r, names, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfStructValue{}, v)
}

func TestReadStructArrayStride1PackedColor(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.u8(10).u8(20).u8(30).u8(40) // b, g, r, a
	w.u8(1).u8(2).u8(3).u8(4)
	r := reader.NewSliceReader(w.bytes())

	n := 2
	dataSize := uint32(4 + n*4*1) // stride 1
	v, err := readStructArray(r, names, n, dataSize)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfStructValue{
		RGBAValue{R: 30, G: 20, B: 10, A: 40},
		RGBAValue{R: 3, G: 2, B: 1, A: 4},
	}, v)
}

func TestReadStructArrayStride3Vector(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.f32(1).f32(2).f32(3)
	w.f32(4).f32(5).f32(6)
	r := reader.NewSliceReader(w.bytes())

	n := 2
	dataSize := uint32(4 + n*4*3) // stride 3
	v, err := readStructArray(r, names, n, dataSize)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfStructValue{
		VectorValue{X: 1, Y: 2, Z: 3},
		VectorValue{X: 4, Y: 5, Z: 6},
	}, v)
}

func TestReadStructArrayStride4LinearColor(t *testing.T) {
	names := buildTestNames()
	w := newByteWriter()
	w.f32(0.1).f32(0.2).f32(0.3).f32(0.4)
	r := reader.NewSliceReader(w.bytes())

	n := 1
	dataSize := uint32(4 + n*4*4) // stride 4
	v, err := readStructArray(r, names, n, dataSize)
	require.NoError(t, err)
	assert.Equal(t, ArrayOfStructValue{
		RGBAValue{R: 0.1, G: 0.2, B: 0.3, A: 0.4},
	}, v)
}

func TestReadStructArrayDefaultStrideNestedProperties(t *testing.T) {
	names := buildTestNames("Bar")
	w := newByteWriter()
	w.propHeader(names, "Bar", "IntProperty", 4, 0)
	w.i32(7)
	w.terminator(names)
	r := reader.NewSliceReader(w.bytes())

	n := 1
	dataSize := uint32(4 + n*4*2) // stride 2, matches no packed case
	v, err := readStructArray(r, names, n, dataSize)
	require.NoError(t, err)

	arr, ok := v.(ArrayOfStructValue)
	require.True(t, ok)
	require.Len(t, arr, 1)
	pv, ok := arr[0].(PropertiesValue)
	require.True(t, ok)
	got, ok := pv.Properties.Get("Bar")
	require.True(t, ok)
	assert.Equal(t, IntValue(7), got)
}
