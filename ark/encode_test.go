package ark

import (
	"math"

	"ark-save-parser/ue"
)

// mustName builds a Name with the given table id and instance 0, for tests
// that construct Property values directly rather than decoding a byte
// stream.
func mustName(id uint32) ue.Name {
	return ue.Name{ID: id}
}

// byteWriter builds little-endian test fixtures matching the reader.Reader
// wire encodings used throughout ark/*_test.go.
type byteWriter struct {
	buf []byte
}

func newByteWriter() *byteWriter {
	return &byteWriter{}
}

func (w *byteWriter) bytes() []byte {
	return w.buf
}

func (w *byteWriter) raw(b ...byte) *byteWriter {
	w.buf = append(w.buf, b...)
	return w
}

func (w *byteWriter) u8(v uint8) *byteWriter {
	return w.raw(v)
}

func (w *byteWriter) u16(v uint16) *byteWriter {
	return w.raw(byte(v), byte(v>>8))
}

func (w *byteWriter) i16(v int16) *byteWriter {
	return w.u16(uint16(v))
}

func (w *byteWriter) u32(v uint32) *byteWriter {
	return w.raw(byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (w *byteWriter) i32(v int32) *byteWriter {
	return w.u32(uint32(v))
}

func (w *byteWriter) u64(v uint64) *byteWriter {
	return w.raw(
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

func (w *byteWriter) f32(v float32) *byteWriter {
	return w.u32(math.Float32bits(v))
}

func (w *byteWriter) f64(v float64) *byteWriter {
	return w.u64(math.Float64bits(v))
}

func (w *byteWriter) bool32(v bool) *byteWriter {
	if v {
		return w.i32(1)
	}
	return w.i32(0)
}

// str encodes a non-empty UTF-8 string the way reader.ReadString expects:
// length prefix counts the NUL terminator.
func (w *byteWriter) str(s string) *byteWriter {
	body := append([]byte(s), 0)
	w.i32(int32(len(body)))
	return w.raw(body...)
}

// name writes a Name (id, instance) pair.
func (w *byteWriter) name(id, instance uint32) *byteWriter {
	return w.u32(id).u32(instance)
}

func (w *byteWriter) guid(b [16]byte) *byteWriter {
	return w.raw(b[:]...)
}

// buildTestNames constructs a Names table directly (bypassing ReadNames'
// reader/offset plumbing) preloaded with every well-known type tag plus
// "None" and any extra property names a test needs to reference.
func buildTestNames(extra ...string) *Names {
	all := append([]string{}, wellKnownTags...)
	all = append(all, "None")
	all = append(all, extra...)

	n := &Names{
		table:     make([]string, len(all)+1),
		byName:    make(map[string]uint32, len(all)),
		wellKnown: make(map[string]uint32, len(wellKnownTags)),
	}
	n.table[0] = placeholderName
	for i, s := range all {
		id := uint32(i) + 1
		n.table[id] = s
		n.byName[s] = id
	}
	for _, tag := range wellKnownTags {
		if id, ok := n.byName[tag]; ok {
			n.wellKnown[tag] = id
		}
	}
	return n
}

// propHeader writes a property record's fixed header: name, type id,
// reserved bytes, data size, and index.
func (w *byteWriter) propHeader(names *Names, propName, typeTag string, dataSize, index uint32) *byteWriter {
	id, ok := names.IDOf(propName)
	if !ok {
		panic("encode_test: unknown property name " + propName)
	}
	w.name(id, 0)
	w.u32(names.WellKnown(typeTag))
	w.raw(0, 0, 0, 0) // reserved
	w.u32(dataSize)
	w.u32(index)
	return w
}

func (w *byteWriter) terminator(names *Names) *byteWriter {
	noneID, _ := names.IDOf("None")
	return w.name(noneID, 0)
}
