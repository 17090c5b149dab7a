package reader

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"
	"unicode/utf8"

	"ark-save-parser/memory"
)

// SliceReader is the in-memory Reader implementation. It backs both
// MMapReader (whose mapped file is itself just a []byte) and the cryopod
// mini-save parser, which works over an extracted byte array rather than a
// file.
type SliceReader struct {
	data []byte
	pos  int64
}

// NewSliceReader wraps data for random-access reads without copying it.
func NewSliceReader(data []byte) *SliceReader {
	return &SliceReader{data: data}
}

func (r *SliceReader) Read(p []byte) (int, error) {
	if r.pos >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += int64(n)
	if n < len(p) {
		return n, io.ErrUnexpectedEOF
	}
	return n, nil
}

func (r *SliceReader) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = r.pos + offset
	case io.SeekEnd:
		next = int64(len(r.data)) + offset
	default:
		return 0, fmt.Errorf("reader: invalid whence %d", whence)
	}
	if next < 0 {
		return 0, fmt.Errorf("reader: negative seek position %d", next)
	}
	r.pos = next
	return r.pos, nil
}

func (r *SliceReader) Pos() (int64, error) {
	return r.pos, nil
}

func (r *SliceReader) bytes(n int) ([]byte, error) {
	if r.pos < 0 || r.pos+int64(n) > int64(len(r.data)) {
		return nil, io.ErrUnexpectedEOF
	}
	b := r.data[r.pos : r.pos+int64(n)]
	r.pos += int64(n)
	return b, nil
}

func (r *SliceReader) ReadBool() (bool, error) {
	v, err := r.ReadI32()
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// The scalar readers all delegate to memory.ReadInt, which drives a plain
// binary.Read(r, binary.LittleEndian, ...) over r.Read — the same helper the
// teacher's object directory walk uses for its length-prefixed fields.

func (r *SliceReader) ReadU8() (uint8, error) {
	return memory.ReadInt[uint8](r)
}

func (r *SliceReader) ReadI8() (int8, error) {
	return memory.ReadInt[int8](r)
}

func (r *SliceReader) ReadU16() (uint16, error) {
	return memory.ReadInt[uint16](r)
}

func (r *SliceReader) ReadI16() (int16, error) {
	return memory.ReadInt[int16](r)
}

func (r *SliceReader) ReadU32() (uint32, error) {
	return memory.ReadInt[uint32](r)
}

func (r *SliceReader) ReadI32() (int32, error) {
	return memory.ReadInt[int32](r)
}

func (r *SliceReader) ReadU64() (uint64, error) {
	return memory.ReadInt[uint64](r)
}

func (r *SliceReader) ReadI64() (int64, error) {
	return memory.ReadInt[int64](r)
}

func (r *SliceReader) ReadU128() ([16]byte, error) {
	var out [16]byte
	b, err := r.bytes(16)
	if err != nil {
		return out, err
	}
	copy(out[:], b)
	return out, nil
}

func (r *SliceReader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *SliceReader) ReadF64() (float64, error) {
	v, err := r.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadString implements the length-prefixed string encoding: n == 0 || n ==
// 1 is an empty string consuming n bytes, n == -1 is an empty string
// consuming 2 bytes, n > 1 is UTF-8 consuming n bytes (body is the first
// n-1, the last is a NUL terminator), n < -1 is UTF-16LE consuming |n|*2
// bytes (body is the first |n|*2-2 bytes, the trailing u16 is NUL).
func (r *SliceReader) ReadString() (string, error) {
	n, err := r.ReadI32()
	if err != nil {
		return "", err
	}

	switch {
	case n == 0 || n == 1:
		if _, err := r.bytes(int(n)); err != nil {
			return "", err
		}
		return "", nil

	case n == -1:
		if _, err := r.bytes(2); err != nil {
			return "", err
		}
		return "", nil

	case n > 1:
		body, err := r.bytes(int(n))
		if err != nil {
			return "", err
		}
		s := body[:n-1]
		if !utf8.Valid(s) {
			return "", ErrInvalidString
		}
		return string(s), nil

	default: // n < -1
		size := int(-n) * 2
		body, err := r.bytes(size)
		if err != nil {
			return "", err
		}
		units := body[:size-2]
		u16 := make([]uint16, len(units)/2)
		for i := range u16 {
			u16[i] = binary.LittleEndian.Uint16(units[i*2 : i*2+2])
		}
		for i := 0; i < len(u16); i++ {
			if !utf16.IsSurrogate(rune(u16[i])) {
				continue
			}
			if i+1 < len(u16) && utf16.DecodeRune(rune(u16[i]), rune(u16[i+1])) != utf8.RuneError {
				i++
				continue
			}
			return "", ErrInvalidString
		}
		runes := utf16.Decode(u16)
		return string(runes), nil
	}
}

