package ark

import (
	"fmt"

	"ark-save-parser/reader"
)

// placeholderName is the string occupying Name Table slot 0. Slot 0 is
// never a real name and is never referenced by decoded payloads.
const placeholderName = ""

// wellKnownTags lists the type-tag strings the Property Decoder dispatches
// on by integer id rather than by string comparison (SPEC_FULL.md §4.2).
var wellKnownTags = []string{
	"ArrayProperty", "BoolProperty", "ByteProperty", "DoubleProperty",
	"FloatProperty", "IntProperty", "Int8Property", "Int16Property",
	"NameProperty", "ObjectProperty", "StrProperty", "StructProperty",
	"TextProperty", "UInt16Property", "UInt32Property", "UInt64Property",
	"Color", "LinearColor", "Quat", "Rotator", "Vector", "Vector2D",
	"UniqueNetIdRepl",
}

// Names is the save's deduplicated string intern table: an ordered sequence
// of strings indexed from 1, with slot 0 reserved, plus a reverse map for
// lookup by string. Immutable once constructed and shared by reference by
// every decoded value that holds a name id.
type Names struct {
	table     []string // table[0] is the placeholder; table[id] is the name for id >= 1
	byName    map[string]uint32
	wellKnown map[string]uint32
}

// ReadNames seeks to offset, reads the name count and that many
// length-prefixed strings, then restores the reader's prior position — the
// same save/restore pattern the teacher's readNamesTable uses.
func ReadNames(r reader.Reader, offset int64) (*Names, error) {
	saved, err := r.Pos()
	if err != nil {
		return nil, fmt.Errorf("ark: names: %w", err)
	}
	if _, err := r.Seek(offset, 0); err != nil {
		return nil, fmt.Errorf("ark: names: seek to %d: %w", offset, err)
	}

	count, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("ark: names: read count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("ark: names: negative count %d: %w", count, ErrHeaderCorrupt)
	}

	n := &Names{
		table:  make([]string, count+1),
		byName: make(map[string]uint32, count),
	}
	n.table[0] = placeholderName

	for i := int32(0); i < count; i++ {
		s, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("ark: names: entry %d: %w", i, err)
		}
		id := uint32(i) + 1
		n.table[id] = s
		n.byName[s] = id
	}

	if _, err := r.Seek(saved, 0); err != nil {
		return nil, fmt.Errorf("ark: names: restore position: %w", err)
	}

	n.wellKnown = make(map[string]uint32, len(wellKnownTags))
	for _, tag := range wellKnownTags {
		if id, ok := n.byName[tag]; ok {
			n.wellKnown[tag] = id
		}
	}

	return n, nil
}

// Name returns the string for id, or the empty placeholder for id == 0 or
// any id past the table's end.
func (n *Names) Name(id uint32) string {
	if int(id) >= len(n.table) {
		return placeholderName
	}
	return n.table[id]
}

// IDOf returns the id for name and whether it was found.
func (n *Names) IDOf(name string) (uint32, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// WellKnown returns the precomputed id for one of the wellKnownTags
// strings, or 0 (the sentinel/placeholder id) if the table never contains
// it — a save with no objects of a given property type simply never
// interns that tag string.
func (n *Names) WellKnown(tag string) uint32 {
	return n.wellKnown[tag]
}

// Len reports the number of real entries (excluding the slot-0 placeholder).
func (n *Names) Len() int {
	return len(n.table) - 1
}
