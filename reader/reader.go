// Package reader implements the save format's byte-level access contract:
// random-access little-endian primitive reads over a file or in-memory
// buffer, plus the length-prefixed UTF-8/UTF-16 string encoding used
// throughout the format.
package reader

import (
	"errors"
	"io"
)

// ErrInvalidString is returned when a length-prefixed string's body is not
// valid UTF-8 or UTF-16.
var ErrInvalidString = errors.New("reader: invalid string encoding")

// Reader is the random-access primitive-read contract every decoder stage
// is built on. Implementations must support seeking both forward and
// backward, since the object directory and property streams interleave
// sequential reads with offset jumps.
type Reader interface {
	io.ReadSeeker

	ReadBool() (bool, error) // header/object-directory bool: 4-byte LE int, truthy iff == 1
	ReadU8() (uint8, error)
	ReadI8() (int8, error)
	ReadU16() (uint16, error)
	ReadI16() (int16, error)
	ReadU32() (uint32, error)
	ReadI32() (int32, error)
	ReadU64() (uint64, error)
	ReadI64() (int64, error)
	ReadU128() ([16]byte, error)
	ReadF32() (float32, error)
	ReadF64() (float64, error)
	ReadString() (string, error)

	// Pos reports the current absolute offset, equivalent to Seek(0, io.SeekCurrent).
	Pos() (int64, error)
}
