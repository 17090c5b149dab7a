package ark

import (
	"fmt"

	"ark-save-parser/reader"
	"ark-save-parser/ue"
)

// readArrayProperty decodes an Array property's payload: an element-kind
// Name, a count, then count elements whose shape depends on the element
// kind (spec.md §4.3). dataSize bounds the whole value; the reader is
// seeked to its end unconditionally once decoding finishes, the way the
// struct-array branch below already has to for its own stride math.
func readArrayProperty(r reader.Reader, names *Names, dataSize uint32) (Value, error) {
	kindName, err := ue.ReadName(r)
	if err != nil {
		return nil, err
	}
	kind := names.Name(kindName.ID)

	// dataSize is measured from here (mirrors the Struct property's
	// end = pos-after-kind-name + data_size), so it covers the count field
	// plus every element, not the element-kind Name itself.
	start, err := r.Pos()
	if err != nil {
		return nil, err
	}
	end := start + int64(dataSize)

	count, err := r.ReadI32()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("ark: array: negative count %d: %w", count, ErrHeaderCorrupt)
	}
	n := int(count)

	value, err := readArrayElements(r, names, kind, n, dataSize)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(end, 0); err != nil {
		return nil, fmt.Errorf("ark: array seek to end: %w", err)
	}
	return value, nil
}

func readArrayElements(r reader.Reader, names *Names, kind string, n int, dataSize uint32) (Value, error) {
	switch kind {
	case "BoolProperty":
		out := make([]bool, n)
		for i := range out {
			b, err := r.ReadU8()
			if err != nil {
				return nil, err
			}
			out[i] = b != 0
		}
		return ArrayOfBoolValue(out), nil

	case "Int8Property":
		return readArrayI8(r, n)
	case "Int16Property":
		return readArrayI16(r, n)
	case "IntProperty":
		return readArrayI32(r, n)
	case "ByteProperty":
		return readArrayU8(r, n)
	case "UInt16Property":
		return readArrayU16(r, n)
	case "UInt32Property":
		return readArrayU32(r, n)
	case "UInt64Property":
		return readArrayU64(r, n)
	case "FloatProperty":
		return readArrayF32(r, n)
	case "DoubleProperty":
		return readArrayF64(r, n)
	case "StrProperty":
		out := make([]string, n)
		for i := range out {
			s, err := r.ReadString()
			if err != nil {
				return nil, err
			}
			out[i] = s
		}
		return ArrayOfStrValue(out), nil

	case "NameProperty":
		// Observed format quirk, preserved verbatim: a NameProperty array is
		// actually encoded as packed float32 data, not as Names.
		return readArrayF32(r, n)

	case "ObjectProperty":
		out := make(ArrayOfObjectValue, n)
		for i := range out {
			elemKind, err := r.ReadU32()
			if err != nil {
				return nil, err
			}
			switch elemKind {
			case 0:
				v, err := r.ReadI32()
				if err != nil {
					return nil, err
				}
				out[i] = IntValue(v)
			case 1:
				nm, err := ue.ReadName(r)
				if err != nil {
					return nil, err
				}
				out[i] = NameValue(names.Name(nm.ID))
			default:
				return nil, fmt.Errorf("%w: array object kind %d", ErrUnknownObjectPropertyKind, elemKind)
			}
		}
		return out, nil

	case "StructProperty":
		return readStructArray(r, names, n, dataSize)

	default:
		// count (4 bytes) already consumed; skip the remaining payload.
		if _, err := r.Seek(int64(dataSize)-4, 1); err != nil {
			return nil, err
		}
		return ArrayOfI32Value{}, nil
	}
}

func readArrayI8(r reader.Reader, n int) (Value, error) {
	out := make([]int8, n)
	for i := range out {
		v, err := r.ReadI8()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfI8Value(out), nil
}

func readArrayI16(r reader.Reader, n int) (Value, error) {
	out := make([]int16, n)
	for i := range out {
		v, err := r.ReadI16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfI16Value(out), nil
}

func readArrayI32(r reader.Reader, n int) (Value, error) {
	out := make([]int32, n)
	for i := range out {
		v, err := r.ReadI32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfI32Value(out), nil
}

func readArrayU8(r reader.Reader, n int) (Value, error) {
	out := make([]uint8, n)
	for i := range out {
		v, err := r.ReadU8()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfU8Value(out), nil
}

func readArrayU16(r reader.Reader, n int) (Value, error) {
	out := make([]uint16, n)
	for i := range out {
		v, err := r.ReadU16()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfU16Value(out), nil
}

func readArrayU32(r reader.Reader, n int) (Value, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfU32Value(out), nil
}

func readArrayU64(r reader.Reader, n int) (Value, error) {
	out := make([]uint64, n)
	for i := range out {
		v, err := r.ReadU64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfU64Value(out), nil
}

func readArrayF32(r reader.Reader, n int) (Value, error) {
	out := make([]float32, n)
	for i := range out {
		v, err := r.ReadF32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfF32Value(out), nil
}

func readArrayF64(r reader.Reader, n int) (Value, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := r.ReadF64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return ArrayOfF64Value(out), nil
}

// readStructArray handles the StructProperty array branch's stride-based
// split: a packed array of primitive structs (Color/Vector/LinearColor) at
// stride 1/3/4, or — at any other stride — a single property-carrying
// struct array, decoded as one nested property stream spanning the entire
// remaining dataSize (spec.md §4.3).
func readStructArray(r reader.Reader, names *Names, n int, dataSize uint32) (Value, error) {
	if n == 0 {
		return ArrayOfStructValue{}, nil
	}

	stride := (int(dataSize) - 4) / 4 / n
	switch stride {
	case 1:
		out := make(ArrayOfStructValue, n)
		for i := range out {
			v, err := readPackedColor(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case 3:
		out := make(ArrayOfStructValue, n)
		for i := range out {
			v, err := readVector(r)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case 4:
		out := make(ArrayOfStructValue, n)
		for i := range out {
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
			if err != nil {
				return nil, err
			}
			out[i] = RGBAValue{R: rr, G: g, B: b, A: a}
		}
		return out, nil
	default:
		nested, err := readProperties(r, names)
		if err != nil {
			return nil, err
		}
		return ArrayOfStructValue{PropertiesValue{Properties: nested}}, nil
	}
}

// readPackedColor reads the stride-1 packed struct-array element: a Color
// stored as 4 packed bytes (b, g, r, a — the same on-disk channel order as
// the standalone Color struct property) rather than 4 floats, which is why
// it measures as a single 4-byte "unit" under the stride formula instead of
// LinearColor's stride of 4.
func readPackedColor(r reader.Reader) (Value, error) {
	b, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	g, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	rr, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	a, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	return RGBAValue{R: float32(rr), G: float32(g), B: float32(b), A: float32(a)}, nil
}
