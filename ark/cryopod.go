package ark

import (
	"fmt"

	"ark-save-parser/reader"
)

// cryopodPath is the property hop sequence from a cryopod's CustomItemDatas
// down to its embedded byte array (spec.md §4.7).
var cryopodPath = []string{"CustomDataBytes", "ByteArrays", "Bytes"}

// expandCryopods finds every PrimalItem_WeaponEmptyCryopod_C object
// carrying CustomItemDatas, extracts its embedded mini-save byte array, and
// parses it as a nested object directory sharing the outer Name Table.
// It returns the expanded objects, in the order their cryopods are
// encountered during outer iteration, for the caller to append after the
// outer objects (spec.md §3 invariant, §4.7); objects is not modified.
//
// Grounded on original_source/src/file/ark.rs's uncryopod_dinos (the
// property-path walk) and src/file/cryopod.rs's CryopodParser (the
// absolute-offset mini-save reader) — reused here as readObjects with a
// zero property base, since spec.md §4.7 describes the mini-save as
// "encoded like §4.4 except that prop_offset is an absolute offset".
func expandCryopods(objects []*Object, names *Names) ([]*Object, error) {
	cryopodID, ok := names.IDOf("PrimalItem_WeaponEmptyCryopod_C")
	if !ok {
		return nil, nil // no cryopod class ever interned; nothing to expand
	}

	var expanded []*Object
	for _, obj := range objects {
		if obj.Name.ID != cryopodID {
			continue
		}
		if !obj.Properties.Has("CustomItemDatas") {
			continue
		}

		data, ok, err := walkCryopodBytes(obj.Properties)
		if err != nil {
			return nil, fmt.Errorf("ark: cryopod: %w", err)
		}
		if !ok {
			continue
		}

		frozen, err := readCryopodObjects(data, names)
		if err != nil {
			return nil, fmt.Errorf("ark: cryopod: %w", err)
		}
		expanded = append(expanded, frozen...)
	}
	return expanded, nil
}

// walkCryopodBytes descends CustomItemDatas -> CustomDataBytes -> ByteArrays
// -> Bytes. Every hop but the last must be a Properties map; the last must
// be an ArrayOfU8.
func walkCryopodBytes(props *Properties) ([]byte, bool, error) {
	value, ok := props.Get("CustomItemDatas")
	if !ok {
		return nil, false, nil
	}

	for _, step := range cryopodPath {
		nested, ok := value.(PropertiesValue)
		if !ok {
			return nil, false, fmt.Errorf("%w: expected Properties at %q", ErrMalformedCryopod, step)
		}
		value, ok = nested.Properties.Get(step)
		if !ok {
			return nil, false, nil
		}
	}

	bytes, ok := value.(ArrayOfU8Value)
	if !ok {
		return nil, false, fmt.Errorf("%w: expected byte array at end of path", ErrMalformedCryopod)
	}
	return []byte(bytes), true, nil
}

func readCryopodObjects(data []byte, names *Names) ([]*Object, error) {
	r := reader.NewSliceReader(data)
	objects, err := readObjects(r, names, 0)
	if err != nil {
		return nil, err
	}
	return objects, nil
}
