package ark

import (
	"encoding/json"
)

// Value is the closed sum type every decoded property payload takes one of.
// Each concrete type below is a distinct Go type rather than a variant tag,
// matching how the original Rust implementation modeled it as an enum
// (see original_source/src/properties/value.rs); the marker method closes
// the set the way the enum's match arms do.
//
// Every concrete type also implements json.Marshaler so that export renders
// the underlying value directly — a bare number, string, tuple, or nested
// object — instead of a tagged wrapper, mirroring the hand-written Serialize
// impl in original_source/src/object/serialize.rs. Where that impl needed a
// live reference to the Name Table at serialize time (to turn a Name id
// into its string), this decoder resolves the name once, at decode time,
// and stores the resolved string in the Value itself — there is no
// equivalent need to carry the table through to JSON encoding.
type Value interface {
	isValue()
}

type (
	BoolValue   bool
	ByteValue   uint8
	DoubleValue float64
	FloatValue  float32
	Int16Value  int16
	Int8Value   int8
	IntValue    int32
	UInt16Value uint16
	UInt32Value uint32
	UInt64Value uint64
	StringValue string

	// NameValue holds the name already resolved to its string.
	NameValue string

	ArrayOfBoolValue []bool
	ArrayOfI8Value   []int8
	ArrayOfI16Value  []int16
	ArrayOfI32Value  []int32
	ArrayOfU8Value   []uint8
	ArrayOfU16Value  []uint16
	ArrayOfU32Value  []uint32
	ArrayOfU64Value  []uint64
	ArrayOfF32Value  []float32
	ArrayOfF64Value  []float64
	ArrayOfStrValue  []string
	ArrayOfNameValue []string
)

// EnumValue is Value::Enum(enum_type, variant) with both names resolved.
type EnumValue struct {
	Type    string
	Variant string
}

// VectorValue covers the Vector and Rotator struct kinds, both 3×f32.
type VectorValue struct{ X, Y, Z float32 }

// Vector2DValue is the Vector2D struct kind, 2×f32.
type Vector2DValue struct{ X, Y float32 }

// QuatValue is the Quat struct kind, 4×f32.
type QuatValue struct{ X, Y, Z, W float32 }

// RGBAValue is the Color/LinearColor struct kind. Color's on-disk channel
// order is b, g, r, a; the decoder reorders into r, g, b, a before
// constructing this value (SPEC_FULL.md §4.3 / spec.md §4.3).
type RGBAValue struct{ R, G, B, A float32 }

// PropertiesValue wraps a nested property stream decoded from inside a
// Struct or Array payload.
type PropertiesValue struct{ Properties *Properties }

// ArrayOfObjectValue holds one element per array slot, each either an
// IntValue or a NameValue depending on the per-element kind byte.
type ArrayOfObjectValue []Value

// ArrayOfStructValue holds the decoded struct-array elements: either a run
// of packed RGBAValue (stride 1 or 4) or VectorValue (stride 3) elements, or
// a single PropertiesValue wrapping one nested property stream (any other
// stride).
type ArrayOfStructValue []Value

func (BoolValue) isValue()          {}
func (ByteValue) isValue()          {}
func (DoubleValue) isValue()        {}
func (FloatValue) isValue()         {}
func (Int16Value) isValue()         {}
func (Int8Value) isValue()          {}
func (IntValue) isValue()           {}
func (UInt16Value) isValue()        {}
func (UInt32Value) isValue()        {}
func (UInt64Value) isValue()        {}
func (StringValue) isValue()        {}
func (NameValue) isValue()          {}
func (EnumValue) isValue()          {}
func (VectorValue) isValue()        {}
func (Vector2DValue) isValue()      {}
func (QuatValue) isValue()          {}
func (RGBAValue) isValue()          {}
func (PropertiesValue) isValue()    {}
func (ArrayOfBoolValue) isValue()   {}
func (ArrayOfI8Value) isValue()     {}
func (ArrayOfI16Value) isValue()    {}
func (ArrayOfI32Value) isValue()    {}
func (ArrayOfU8Value) isValue()     {}
func (ArrayOfU16Value) isValue()    {}
func (ArrayOfU32Value) isValue()    {}
func (ArrayOfU64Value) isValue()    {}
func (ArrayOfF32Value) isValue()    {}
func (ArrayOfF64Value) isValue()    {}
func (ArrayOfStrValue) isValue()    {}
func (ArrayOfNameValue) isValue()   {}
func (ArrayOfObjectValue) isValue() {}
func (ArrayOfStructValue) isValue() {}

// Scalar/array JSON rendering is a direct pass-through to encoding/json for
// the underlying Go value; only the struct-shaped variants need a hand
// written tuple or object form.

func (v BoolValue) MarshalJSON() ([]byte, error)   { return json.Marshal(bool(v)) }
func (v ByteValue) MarshalJSON() ([]byte, error)   { return json.Marshal(uint8(v)) }
func (v DoubleValue) MarshalJSON() ([]byte, error) { return json.Marshal(float64(v)) }
func (v FloatValue) MarshalJSON() ([]byte, error)  { return json.Marshal(float32(v)) }
func (v Int16Value) MarshalJSON() ([]byte, error)  { return json.Marshal(int16(v)) }
func (v Int8Value) MarshalJSON() ([]byte, error)   { return json.Marshal(int8(v)) }
func (v IntValue) MarshalJSON() ([]byte, error)    { return json.Marshal(int32(v)) }
func (v UInt16Value) MarshalJSON() ([]byte, error) { return json.Marshal(uint16(v)) }
func (v UInt32Value) MarshalJSON() ([]byte, error) { return json.Marshal(uint32(v)) }
func (v UInt64Value) MarshalJSON() ([]byte, error) { return json.Marshal(uint64(v)) }
func (v StringValue) MarshalJSON() ([]byte, error) { return json.Marshal(string(v)) }
func (v NameValue) MarshalJSON() ([]byte, error)   { return json.Marshal(string(v)) }

func (v ArrayOfBoolValue) MarshalJSON() ([]byte, error) { return json.Marshal([]bool(v)) }
func (v ArrayOfI8Value) MarshalJSON() ([]byte, error)   { return json.Marshal([]int8(v)) }
func (v ArrayOfI16Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]int16(v)) }
func (v ArrayOfI32Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]int32(v)) }
func (v ArrayOfU8Value) MarshalJSON() ([]byte, error)   { return json.Marshal([]uint8(v)) }
func (v ArrayOfU16Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]uint16(v)) }
func (v ArrayOfU32Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]uint32(v)) }
func (v ArrayOfU64Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]uint64(v)) }
func (v ArrayOfF32Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]float32(v)) }
func (v ArrayOfF64Value) MarshalJSON() ([]byte, error)  { return json.Marshal([]float64(v)) }
func (v ArrayOfStrValue) MarshalJSON() ([]byte, error)  { return json.Marshal([]string(v)) }
func (v ArrayOfNameValue) MarshalJSON() ([]byte, error) { return json.Marshal([]string(v)) }
func (v ArrayOfObjectValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(v))
}
func (v ArrayOfStructValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Value(v))
}

// MarshalJSON renders an Enum as its variant string — the enum_type is
// dropped the same way Rust's Serialize impl only emits self.names[v.id]
// for the variant name.
func (v EnumValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Variant)
}

func (v VectorValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float32{v.X, v.Y, v.Z})
}

func (v Vector2DValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32{v.X, v.Y})
}

func (v QuatValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{v.X, v.Y, v.Z, v.W})
}

func (v RGBAValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float32{v.R, v.G, v.B, v.A})
}

func (v PropertiesValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Properties)
}
