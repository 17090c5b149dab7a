package ark

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"ark-save-parser/reader"
	"ark-save-parser/ue"
)

// Property is one record in a property stream: a named, possibly-repeated
// value. Index is the position of this record among repeats of the same
// name id — it gives fixed-size sparse arrays (spec.md §4.3, §8 scenario 5)
// a stable slot even when only a few indices are actually present.
type Property struct {
	Name  ue.Name
	Index uint32
	Value Value
}

// Properties is the decoded property stream for one object (or nested
// struct/array payload): name id -> ordered sequence of Property, plus the
// set of resolved string names present, for cheap has()-style lookups.
//
// Iteration order of props matches first-appearance order in the stream,
// mirroring the teacher's append-only []Property slice and the original
// Rust implementation's IndexMap-backed Properties::props.
type Properties struct {
	names   *Names
	order   []uint32
	props   map[uint32][]Property
	present map[string]bool
}

func newProperties(names *Names) *Properties {
	return &Properties{
		names:   names,
		props:   make(map[uint32][]Property),
		present: make(map[string]bool),
	}
}

func (p *Properties) add(prop Property) {
	id := prop.Name.ID
	if _, ok := p.props[id]; !ok {
		p.order = append(p.order, id)
	}
	p.props[id] = append(p.props[id], prop)
	p.present[p.names.Name(id)] = true
}

// Has reports whether name appears at least once in the stream.
func (p *Properties) Has(name string) bool {
	return p.present[name]
}

// Get returns the first-recorded value for name.
func (p *Properties) Get(name string) (Value, bool) {
	id, ok := p.names.IDOf(name)
	if !ok {
		return nil, false
	}
	props, ok := p.props[id]
	if !ok || len(props) == 0 {
		return nil, false
	}
	return props[0].Value, true
}

// IntVector reconstructs a sparse fixed-size int array: every recorded
// Property for name is placed at its Index, trailing slots up to length
// are zero-padded (spec.md §8 scenario 5).
func (p *Properties) IntVector(name string, length int) []int32 {
	out := make([]int32, length)
	id, ok := p.names.IDOf(name)
	if !ok {
		return out
	}
	for _, prop := range p.props[id] {
		if iv, ok := prop.Value.(IntValue); ok && int(prop.Index) < length {
			out[prop.Index] = int32(iv)
		}
	}
	return out
}

// MarshalJSON renders each name's value(s): a bare value for a
// single-record name, or an index-padded array for a repeated one —
// matching original_source/src/object/serialize.rs's NameValue/ValueVec
// split.
func (p *Properties) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.order))
	for _, id := range p.order {
		props := p.props[id]
		name := p.names.Name(id)
		var raw json.RawMessage
		var err error
		if len(props) == 1 {
			raw, err = json.Marshal(props[0].Value)
		} else {
			raw, err = marshalSparse(props)
		}
		if err != nil {
			return nil, err
		}
		out[name] = raw
	}
	return json.Marshal(out)
}

func marshalSparse(props []Property) (json.RawMessage, error) {
	seq := make([]json.RawMessage, 0, len(props))
	var i uint32
	for _, prop := range props {
		for i < prop.Index {
			seq = append(seq, json.RawMessage("0"))
			i++
		}
		raw, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, err
		}
		seq = append(seq, raw)
		i++
	}
	return json.Marshal(seq)
}

// readProperties reads a terminated stream of property records starting at
// r's current position (spec.md §4.3). Decoding stops when a record's name
// resolves to "None".
func readProperties(r reader.Reader, names *Names) (*Properties, error) {
	props := newProperties(names)
	for {
		prop, done, err := readProperty(r, names)
		if err != nil {
			return nil, err
		}
		if done {
			return props, nil
		}
		props.add(prop)
	}
}

func readProperty(r reader.Reader, names *Names) (Property, bool, error) {
	name, err := ue.ReadName(r)
	if err != nil {
		return Property{}, false, fmt.Errorf("ark: property name: %w", err)
	}
	if names.Name(name.ID) == "None" {
		return Property{}, true, nil
	}

	typeID, err := r.ReadU32()
	if err != nil {
		return Property{}, false, fmt.Errorf("ark: property type id: %w", err)
	}
	if _, err := r.Seek(4, 1); err != nil { // reserved
		return Property{}, false, fmt.Errorf("ark: property reserved bytes: %w", err)
	}
	dataSize, err := r.ReadU32()
	if err != nil {
		return Property{}, false, fmt.Errorf("ark: property data size: %w", err)
	}
	index, err := r.ReadU32()
	if err != nil {
		return Property{}, false, fmt.Errorf("ark: property index: %w", err)
	}

	value, err := readPropertyValue(r, names, typeID, dataSize)
	if err != nil {
		return Property{}, false, fmt.Errorf("ark: property %q: %w", names.Name(name.ID), err)
	}

	return Property{Name: name, Index: index, Value: value}, false, nil
}

func readPropertyValue(r reader.Reader, names *Names, typeID, dataSize uint32) (Value, error) {
	switch typeID {
	case names.WellKnown("BoolProperty"):
		b, err := r.ReadU8()
		return BoolValue(b != 0), err

	case names.WellKnown("ByteProperty"):
		return readByteProperty(r, names)

	case names.WellKnown("DoubleProperty"):
		v, err := r.ReadF64()
		return DoubleValue(v), err

	case names.WellKnown("FloatProperty"):
		v, err := r.ReadF32()
		return FloatValue(v), err

	case names.WellKnown("Int16Property"):
		v, err := r.ReadI16()
		return Int16Value(v), err

	case names.WellKnown("Int8Property"):
		v, err := r.ReadI8()
		return Int8Value(v), err

	case names.WellKnown("IntProperty"):
		v, err := r.ReadI32()
		return IntValue(v), err

	case names.WellKnown("UInt16Property"):
		v, err := r.ReadU16()
		return UInt16Value(v), err

	case names.WellKnown("UInt32Property"):
		v, err := r.ReadU32()
		return UInt32Value(v), err

	case names.WellKnown("UInt64Property"):
		v, err := r.ReadU64()
		return UInt64Value(v), err

	case names.WellKnown("NameProperty"):
		n, err := ue.ReadName(r)
		if err != nil {
			return nil, err
		}
		return NameValue(names.Name(n.ID)), nil

	case names.WellKnown("StrProperty"):
		s, err := r.ReadString()
		return StringValue(s), err

	case names.WellKnown("ObjectProperty"):
		return readObjectProperty(r, names, dataSize)

	case names.WellKnown("StructProperty"):
		return readStructProperty(r, names, dataSize)

	case names.WellKnown("ArrayProperty"):
		return readArrayProperty(r, names, dataSize)

	case names.WellKnown("TextProperty"):
		return readTextProperty(r, dataSize)

	default:
		return nil, fmt.Errorf("%w: type id %d", ErrUnknownPropertyType, typeID)
	}
}

func readByteProperty(r reader.Reader, names *Names) (Value, error) {
	enumType, err := ue.ReadName(r)
	if err != nil {
		return nil, err
	}
	if names.Name(enumType.ID) == "None" {
		b, err := r.ReadU8()
		return ByteValue(b), err
	}
	variant, err := ue.ReadName(r)
	if err != nil {
		return nil, err
	}
	return EnumValue{Type: names.Name(enumType.ID), Variant: names.Name(variant.ID)}, nil
}

func readObjectProperty(r reader.Reader, names *Names, dataSize uint32) (Value, error) {
	if dataSize == 4 {
		v, err := r.ReadI32()
		return IntValue(v), err
	}
	if dataSize >= 8 {
		kind, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		switch kind {
		case 0:
			v, err := r.ReadI32()
			return IntValue(v), err
		case 1:
			n, err := ue.ReadName(r)
			if err != nil {
				return nil, err
			}
			return NameValue(names.Name(n.ID)), nil
		default:
			return nil, fmt.Errorf("%w: object kind %d", ErrUnknownObjectPropertyKind, kind)
		}
	}
	return nil, fmt.Errorf("%w: object data size %d", ErrUnknownObjectPropertyKind, dataSize)
}

func readStructProperty(r reader.Reader, names *Names, dataSize uint32) (Value, error) {
	kindName, err := ue.ReadName(r)
	if err != nil {
		return nil, err
	}
	start, err := r.Pos()
	if err != nil {
		return nil, err
	}
	end := start + int64(dataSize)
	kind := names.Name(kindName.ID)

	value, err := readStructPayload(r, names, kind, dataSize)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(end, 0); err != nil {
		return nil, fmt.Errorf("ark: struct seek to end: %w", err)
	}
	return value, nil
}

func readStructPayload(r reader.Reader, names *Names, kind string, dataSize uint32) (Value, error) {
	switch kind {
	case "Vector", "Rotator":
		return readVector(r)
	case "Vector2D":
		x, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		y, err := r.ReadF32()
		return Vector2DValue{X: x, Y: y}, err
	case "Quat":
		return readQuat(r)
	case "Color":
		b, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		g, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		rr, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		a, err := r.ReadF32()
		return RGBAValue{R: rr, G: g, B: b, A: a}, err
	case "LinearColor":
		rr, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		g, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		b, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		a, err := r.ReadF32()
		return RGBAValue{R: rr, G: g, B: b, A: a}, err
	case "UniqueNetIdRepl":
		if _, err := r.Seek(4, 1); err != nil {
			return nil, err
		}
		s, err := r.ReadString()
		return StringValue(s), err
	default:
		nested, err := readProperties(r, names)
		if err != nil {
			return nil, err
		}
		return PropertiesValue{Properties: nested}, nil
	}
}

func readVector(r reader.Reader) (Value, error) {
	x, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	y, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	z, err := r.ReadF32()
	return VectorValue{X: x, Y: y, Z: z}, err
}

func readQuat(r reader.Reader) (Value, error) {
	x, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	y, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	z, err := r.ReadF32()
	if err != nil {
		return nil, err
	}
	w, err := r.ReadF32()
	return QuatValue{X: x, Y: y, Z: z, W: w}, err
}

func readTextProperty(r reader.Reader, dataSize uint32) (Value, error) {
	raw, err := readRawBytes(r, int(dataSize))
	if err != nil {
		return nil, err
	}
	decoded, err := base64.StdEncoding.DecodeString(string(raw))
	if err != nil {
		return StringValue(""), nil //nolint:nilerr // malformed text blobs degrade to empty, not a hard error
	}
	return StringValue(string(decoded)), nil
}

func readRawBytes(r reader.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	for read := 0; read < n; {
		k, err := r.Read(buf[read:])
		read += k
		if err != nil && read < n {
			return nil, fmt.Errorf("%w: %v", ErrShortRead, err)
		}
	}
	return buf, nil
}
