package ark

import (
	"fmt"

	"ark-save-parser/arklog"
	"ark-save-parser/reader"
)

// Save is the facade over a fully-decoded .ark file: the shared Name
// Table, the flat object array (outer objects followed by expanded
// cryopod contents), and the memory mapping backing both. Immutable after
// Open returns; Close releases the mapping exactly once.
type Save struct {
	r          *reader.MMapReader
	names      *Names
	objects    []*Object
	mapName    string
	outerCount int
}

// Open memory-maps path, decodes its header, name table, object directory,
// and cryopod contents, and returns the facade (spec.md §4.8). Every error
// path below closes the mapping before returning.
func Open(path string) (*Save, error) {
	r, err := reader.OpenMMap(path)
	if err != nil {
		return nil, err
	}

	save, err := buildSave(r)
	if err != nil {
		r.Close()
		return nil, err
	}
	return save, nil
}

func buildSave(r *reader.MMapReader) (*Save, error) {
	hdr, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("ark: header: %w", err)
	}

	mapName, err := skipAncillaryBlocks(r)
	if err != nil {
		return nil, fmt.Errorf("ark: ancillary blocks: %w", err)
	}

	names, err := ReadNames(r, int64(hdr.namesOffset))
	if err != nil {
		return nil, fmt.Errorf("ark: names: %w", err)
	}

	objects, err := readObjects(r, names, int64(hdr.propertiesOffset))
	if err != nil {
		return nil, fmt.Errorf("ark: objects: %w", err)
	}
	arklog.GetLogger().Debug("decoded object directory", arklog.F("count", len(objects)))
	outerCount := len(objects)

	expanded, err := expandCryopods(objects, names)
	if err != nil {
		return nil, err
	}
	if len(expanded) > 0 {
		arklog.GetLogger().Debug("expanded cryopods", arklog.F("objects", len(expanded)))
		objects = append(objects, expanded...)
	}

	return &Save{r: r, names: names, objects: objects, mapName: mapName, outerCount: outerCount}, nil
}

// Close releases the underlying memory mapping.
func (s *Save) Close() error {
	return s.r.Close()
}

// Entries returns one Entry per decoded object, outer objects first
// followed by expanded cryopod contents, in discovery order.
func (s *Save) Entries() []Entry {
	out := make([]Entry, len(s.objects))
	for i := range s.objects {
		out[i] = newEntry(s.objects, s.names, i)
	}
	return out
}

// Name resolves a Name Table id to its string.
func (s *Save) Name(id uint32) string {
	return s.names.Name(id)
}

// NameID resolves a string to its Name Table id, if interned.
func (s *Save) NameID(name string) (uint32, bool) {
	return s.names.IDOf(name)
}

// MapName is the map identifier extracted from the binary-data-names block.
func (s *Save) MapName() string {
	return s.mapName
}

// CryopodStart is the index of the first entry produced by cryopod
// expansion; entries at or past it were not present in the file's own
// object directory.
func (s *Save) CryopodStart() int {
	return s.outerCount
}

type header struct {
	version          int16
	namesOffset      uint32
	propertiesOffset int32
}

// readHeader decodes the version-gated fixed header (spec.md §6). Versions
// 5-9 are accepted; anything else fails with ErrUnsupportedVersion.
func readHeader(r reader.Reader) (header, error) {
	version, err := r.ReadI16()
	if err != nil {
		return header{}, err
	}
	if version < 5 || version > 9 {
		return header{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	if version > 6 {
		if _, err := r.ReadU32(); err != nil { // hibernation_off, ignored
			return header{}, err
		}
		zero, err := r.ReadI32()
		if err != nil {
			return header{}, err
		}
		if zero != 0 {
			return header{}, fmt.Errorf("%w: expected zero, got %d", ErrHeaderCorrupt, zero)
		}
	}

	namesOffset, err := r.ReadU32()
	if err != nil {
		return header{}, err
	}
	propertiesOffset, err := r.ReadI32()
	if err != nil {
		return header{}, err
	}
	if _, err := r.ReadF32(); err != nil { // game_time, ignored
		return header{}, err
	}

	if version > 8 {
		if _, err := r.ReadU32(); err != nil { // save_count, ignored
			return header{}, err
		}
	}

	return header{version: version, namesOffset: namesOffset, propertiesOffset: propertiesOffset}, nil
}

// skipAncillaryBlocks consumes the binary-data-names, embedded-binary-data,
// and data-files-object-map blocks that sit between the header and the
// object directory (spec.md §6), returning the map identifier extracted
// from the first binary-data-name entry.
func skipAncillaryBlocks(r reader.Reader) (string, error) {
	mapName, err := skipBinaryDataNames(r)
	if err != nil {
		return "", fmt.Errorf("binary data names: %w", err)
	}
	if err := skipEmbeddedBinaryData(r); err != nil {
		return "", fmt.Errorf("embedded binary data: %w", err)
	}
	if err := skipDataFilesObjectMap(r); err != nil {
		return "", fmt.Errorf("data files object map: %w", err)
	}
	return mapName, nil
}

func skipBinaryDataNames(r reader.Reader) (string, error) {
	count, err := r.ReadI32()
	if err != nil {
		return "", err
	}
	if count <= 0 {
		return "", nil
	}
	mapName, err := r.ReadString()
	if err != nil {
		return "", err
	}
	for i := int32(1); i < count; i++ {
		if _, err := r.ReadString(); err != nil {
			return "", err
		}
	}
	return mapName, nil
}

func skipEmbeddedBinaryData(r reader.Reader) error {
	dataCount, err := r.ReadI32()
	if err != nil {
		return err
	}
	for i := int32(0); i < dataCount; i++ {
		if _, err := r.ReadString(); err != nil { // path
			return err
		}
		parts, err := r.ReadI32()
		if err != nil {
			return err
		}
		for p := int32(0); p < parts; p++ {
			blobs, err := r.ReadI32()
			if err != nil {
				return err
			}
			for b := int32(0); b < blobs; b++ {
				words, err := r.ReadI32()
				if err != nil {
					return err
				}
				if _, err := r.Seek(int64(words)*4, 1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func skipDataFilesObjectMap(r reader.Reader) error {
	entries, err := r.ReadI32()
	if err != nil {
		return err
	}
	for i := int32(0); i < entries; i++ {
		if _, err := r.Seek(4, 1); err != nil {
			return err
		}
		count, err := r.ReadU32()
		if err != nil {
			return err
		}
		for j := uint32(0); j < count; j++ {
			if _, err := r.ReadString(); err != nil {
				return err
			}
		}
	}
	return nil
}
