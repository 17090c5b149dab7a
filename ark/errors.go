package ark

import "errors"

// Sentinel error kinds, matched 1:1 to SPEC_FULL.md §7. They are wrapped
// with fmt.Errorf("...: %w", ...) at their point of failure, the way the
// teacher's save_file.go and process-data.go wrap every read error.
// ErrInvalidString is not returned by this package: invalid string bodies
// surface as reader.ErrInvalidString. ErrShortRead is returned only by the
// raw-byte read behind the Text property; short primitive reads surface as
// io.ErrUnexpectedEOF from the reader.
var (
	ErrShortRead                 = errors.New("ark: short read")
	ErrInvalidString             = errors.New("ark: invalid string encoding")
	ErrUnsupportedVersion        = errors.New("ark: unsupported save version")
	ErrHeaderCorrupt             = errors.New("ark: corrupt header")
	ErrUnknownPropertyType       = errors.New("ark: unknown property type")
	ErrUnknownObjectPropertyKind = errors.New("ark: unknown object property kind")
	ErrMalformedCryopod          = errors.New("ark: malformed cryopod blob")
)
