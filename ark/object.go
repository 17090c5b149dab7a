package ark

import (
	"encoding/json"
	"fmt"

	"ark-save-parser/arklog"
	"ark-save-parser/config"
	"ark-save-parser/reader"
	"ark-save-parser/ue"
	"ark-save-parser/utils"
)

// Location is a decoded world position. Only x/y/z survive from the
// on-disk struct; the trailing 12 bytes (rotation/velocity, never used by
// this decoder) are skipped and discarded, the same choice
// original_source/src/location.rs makes.
type Location struct {
	X, Y, Z float32
}

// Object is one entry from the object directory, fully decoded and
// immutable once constructed.
type Object struct {
	GUID         ue.GUID
	Name         ue.Name
	IsItem       bool
	Location     *Location
	Properties   *Properties
	ObjectType   Type
	StatusRef    *int
	InventoryRef *int
}

// ClassName resolves the object's class name through the shared Name Table.
func (o *Object) ClassName(names *Names) string {
	return names.Name(o.Name.ID)
}

const (
	nameMyCharacterStatusComponent = "MyCharacterStatusComponent"
	nameMyInventoryComponent       = "MyInventoryComponent"
)

// readObjects reads the object directory (spec.md §4.4): an object count,
// then per object a GUID, name, item flag, discarded extra names, a
// discarded reserved block, an optional location, and the relative offset
// of its property stream. Properties are decoded by seeking to
// propertyBase+offset and back, which is why reader.Reader must support
// backward seeks.
func readObjects(r reader.Reader, names *Names, propertyBase int64) ([]*Object, error) {
	count, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("ark: object directory: count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("ark: object directory: negative count %d: %w", count, ErrHeaderCorrupt)
	}

	objects := make([]*Object, 0, count)
	for i := int32(0); i < count; i++ {
		obj, err := readObject(r, names, propertyBase)
		if err != nil {
			return nil, fmt.Errorf("ark: object %d: %w", i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func readObject(r reader.Reader, names *Names, propertyBase int64) (*Object, error) {
	guid, err := ue.ReadGUID(r)
	if err != nil {
		return nil, fmt.Errorf("guid: %w", err)
	}
	name, err := ue.ReadName(r)
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	isItem, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("is_item: %w", err)
	}

	extraCount, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("extra_count: %w", err)
	}
	if extraCount < 0 {
		return nil, fmt.Errorf("negative extra_count %d: %w", extraCount, ErrHeaderCorrupt)
	}
	for i := int32(0); i < extraCount; i++ {
		if _, err := ue.ReadName(r); err != nil {
			return nil, fmt.Errorf("extra_name %d: %w", i, err)
		}
	}

	if _, err := r.Seek(8, 1); err != nil { // reserved
		return nil, fmt.Errorf("reserved: %w", err)
	}

	hasLocation, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("has_location: %w", err)
	}
	var location *Location
	if hasLocation {
		x, err := r.ReadF32()
		if err != nil {
			return nil, fmt.Errorf("location.x: %w", err)
		}
		y, err := r.ReadF32()
		if err != nil {
			return nil, fmt.Errorf("location.y: %w", err)
		}
		z, err := r.ReadF32()
		if err != nil {
			return nil, fmt.Errorf("location.z: %w", err)
		}
		if _, err := r.Seek(12, 1); err != nil {
			return nil, fmt.Errorf("location trailing bytes: %w", err)
		}
		location = &Location{X: x, Y: y, Z: z}
	}

	propOffset, err := r.ReadI32()
	if err != nil {
		return nil, fmt.Errorf("prop_offset: %w", err)
	}
	if _, err := r.Seek(4, 1); err != nil { // after_props
		return nil, fmt.Errorf("after_props: %w", err)
	}

	saved, err := r.Pos()
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(propertyBase+int64(propOffset), 0); err != nil {
		return nil, fmt.Errorf("seek to properties: %w", err)
	}
	props, err := readProperties(r, names)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}
	if _, err := r.Seek(saved, 0); err != nil {
		return nil, fmt.Errorf("restore directory position: %w", err)
	}

	class := names.Name(name.ID)
	objType := classify(class, isItem, props)
	arklog.GetLogger().Debug("decoded object", arklog.F("class", class), arklog.F("type", string(objType)))

	if config.DEBUG_SAVE_JSON {
		if err := utils.SaveToFile("objects", class, "json", props); err != nil {
			arklog.GetLogger().Warn("debug dump failed", arklog.F("class", class), arklog.F("error", err))
		}
	}

	return &Object{
		GUID:         guid,
		Name:         name,
		IsItem:       isItem,
		Location:     location,
		Properties:   props,
		ObjectType:   objType,
		StatusRef:    intRef(props, nameMyCharacterStatusComponent),
		InventoryRef: intRef(props, nameMyInventoryComponent),
	}, nil
}

// marshalJSON renders this object the way original_source's Serialize impl
// for Object does: ClassName, Classification, the resolved status/inventory
// component sub-entries (by recursive Entry.MarshalJSON), and every decoded
// property, all merged into one JSON object. encoding/json writes its keys
// in sorted order, and a property whose name equals one of the fixed keys
// replaces that key's value.
func (o *Object) marshalJSON(names *Names, self Entry) ([]byte, error) {
	out := make(map[string]json.RawMessage)

	className, err := json.Marshal(o.ClassName(names))
	if err != nil {
		return nil, err
	}
	out["ClassName"] = className

	classification, err := json.Marshal(o.ObjectType)
	if err != nil {
		return nil, err
	}
	out["Classification"] = classification

	if status, ok := self.StatusComponent(); ok {
		raw, err := json.Marshal(status)
		if err != nil {
			return nil, err
		}
		out["StatusComponent"] = raw
	}
	if inventory, ok := self.InventoryComponent(); ok {
		raw, err := json.Marshal(inventory)
		if err != nil {
			return nil, err
		}
		out["InventoryComponent"] = raw
	}

	props, err := json.Marshal(o.Properties)
	if err != nil {
		return nil, err
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(props, &flat); err != nil {
		return nil, err
	}
	for k, v := range flat {
		out[k] = v
	}

	return json.Marshal(out)
}

// intRef resolves a well-known component-reference property to an object
// index, per spec.md §4.6: present and carrying an Int payload, or nil.
func intRef(props *Properties, name string) *int {
	v, ok := props.Get(name)
	if !ok {
		return nil
	}
	iv, ok := v.(IntValue)
	if !ok {
		return nil
	}
	n := int(iv)
	return &n
}
