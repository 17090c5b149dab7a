package ark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ark-save-parser/reader"
)

func TestReadPropertiesIntAndBool(t *testing.T) {
	names := buildTestNames("Health", "Dead")

	w := newByteWriter()
	w.propHeader(names, "Health", "IntProperty", 4, 0)
	w.i32(42)
	w.propHeader(names, "Dead", "BoolProperty", 1, 0)
	w.u8(1)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Health")
	require.True(t, ok)
	assert.Equal(t, IntValue(42), v)

	v, ok = props.Get("Dead")
	require.True(t, ok)
	assert.Equal(t, BoolValue(true), v)

	assert.True(t, props.Has("Health"))
	assert.False(t, props.Has("Missing"))
}

// TestReadPropertiesSparseIntVector reproduces spec.md §8 scenario 5
// literally: records at index 0 and index 3 with values Int(5) and Int(9)
// yield [5, 0, 0, 9] at length 4, and further reads pad trailing zeros out
// to length 12.
func TestReadPropertiesSparseIntVector(t *testing.T) {
	names := buildTestNames("Stat")

	w := newByteWriter()
	w.propHeader(names, "Stat", "IntProperty", 4, 0)
	w.i32(5)
	w.propHeader(names, "Stat", "IntProperty", 4, 3)
	w.i32(9)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	assert.Equal(t, []int32{5, 0, 0, 9}, props.IntVector("Stat", 4))
	assert.Equal(t, []int32{5, 0, 0, 9, 0, 0, 0, 0, 0, 0, 0, 0}, props.IntVector("Stat", 12))
}

// TestColorStructOrderingScenario4 reproduces spec.md §8 scenario 4
// literally: a Color struct payload of f32(0.1) f32(0.2) f32(0.3) f32(0.4)
// must decode to RGBA(r=0.3, g=0.2, b=0.1, a=0.4) — the on-disk channel
// order is b, g, r, a, not r, g, b, a.
func TestColorStructOrderingScenario4(t *testing.T) {
	names := buildTestNames("Tint")

	w := newByteWriter()
	w.propHeader(names, "Tint", "StructProperty", 16, 0)
	colorID, ok := names.IDOf("Color")
	require.True(t, ok)
	w.name(colorID, 0)
	w.f32(0.1).f32(0.2).f32(0.3).f32(0.4)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Tint")
	require.True(t, ok)
	assert.Equal(t, RGBAValue{R: 0.3, G: 0.2, B: 0.1, A: 0.4}, v)
}

func TestReadPropertiesVectorStruct(t *testing.T) {
	names := buildTestNames("Pos")

	w := newByteWriter()
	w.propHeader(names, "Pos", "StructProperty", 12, 0)
	vectorID, ok := names.IDOf("Vector")
	require.True(t, ok)
	w.name(vectorID, 0)
	w.f32(1).f32(2).f32(3)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Pos")
	require.True(t, ok)
	assert.Equal(t, VectorValue{X: 1, Y: 2, Z: 3}, v)
}

func TestReadPropertiesArrayOfInt(t *testing.T) {
	names := buildTestNames("Items")

	w := newByteWriter()
	w.propHeader(names, "Items", "ArrayProperty", 16, 0) // count(4) + 3*i32
	intPropID, ok := names.IDOf("IntProperty")
	require.True(t, ok)
	w.name(intPropID, 0)
	w.i32(3)
	w.i32(1).i32(2).i32(3)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Items")
	require.True(t, ok)
	assert.Equal(t, ArrayOfI32Value{1, 2, 3}, v)
}

func TestReadPropertiesArrayOfNameIsF32Quirk(t *testing.T) {
	names := buildTestNames("Weird")

	w := newByteWriter()
	w.propHeader(names, "Weird", "ArrayProperty", 12, 0) // count(4) + 2*f32
	namePropID, ok := names.IDOf("NameProperty")
	require.True(t, ok)
	w.name(namePropID, 0)
	w.i32(2)
	w.f32(1.5).f32(2.5)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Weird")
	require.True(t, ok)
	assert.Equal(t, ArrayOfF32Value{1.5, 2.5}, v)
}

func TestReadObjectPropertyVariants(t *testing.T) {
	names := buildTestNames("TargetA", "TargetB", "SomeActor")

	w := newByteWriter()
	w.propHeader(names, "TargetA", "ObjectProperty", 4, 0)
	w.i32(7)

	actorID, ok := names.IDOf("SomeActor")
	require.True(t, ok)
	w.propHeader(names, "TargetB", "ObjectProperty", 12, 0)
	w.u32(1) // kind 1 == Name
	w.name(actorID, 0)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("TargetA")
	require.True(t, ok)
	assert.Equal(t, IntValue(7), v)

	v, ok = props.Get("TargetB")
	require.True(t, ok)
	assert.Equal(t, NameValue("SomeActor"), v)
}

func TestReadBytePropertyEnumAndPlain(t *testing.T) {
	names := buildTestNames("Mode", "Flags", "MyEnum", "Active")

	w := newByteWriter()
	enumTypeID, _ := names.IDOf("MyEnum")
	variantID, _ := names.IDOf("Active")
	w.propHeader(names, "Mode", "ByteProperty", 16, 0)
	w.name(enumTypeID, 0)
	w.name(variantID, 0)

	noneID, _ := names.IDOf("None")
	w.propHeader(names, "Flags", "ByteProperty", 9, 0)
	w.name(noneID, 0)
	w.u8(5)

	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	props, err := readProperties(r, names)
	require.NoError(t, err)

	v, ok := props.Get("Mode")
	require.True(t, ok)
	assert.Equal(t, EnumValue{Type: "MyEnum", Variant: "Active"}, v)

	v, ok = props.Get("Flags")
	require.True(t, ok)
	assert.Equal(t, ByteValue(5), v)
}

func TestReadPropertiesUnknownTypeID(t *testing.T) {
	names := buildTestNames("Bogus")

	w := newByteWriter()
	id, _ := names.IDOf("Bogus")
	w.name(id, 0)
	w.u32(999999) // no such well-known type id
	w.raw(0, 0, 0, 0)
	w.u32(0)
	w.u32(0)
	w.terminator(names)

	r := reader.NewSliceReader(w.bytes())
	_, err := readProperties(r, names)
	assert.ErrorIs(t, err, ErrUnknownPropertyType)
}
