package ark

// Entry is a lightweight projection into the shared, collectively-owned
// object array: it holds a reference to that array plus the index it
// describes, rather than copying the Object it refers to (spec.md §3,
// "Entry (projection view)"). Status/inventory component references are
// resolved lazily through the same array.
type Entry struct {
	objects []*Object
	names   *Names
	index   int
}

func newEntry(objects []*Object, names *Names, index int) Entry {
	return Entry{objects: objects, names: names, index: index}
}

func (e Entry) object() *Object {
	return e.objects[e.index]
}

// Index is the entry's position in the flat object array.
func (e Entry) Index() int { return e.index }

// ClassName is the object's class name, resolved through the Name Table.
func (e Entry) ClassName() string {
	return e.object().ClassName(e.names)
}

// Type is the object's Classifier-assigned semantic type.
func (e Entry) Type() Type {
	return e.object().ObjectType
}

// Location is the object's world position, if it has one.
func (e Entry) Location() *Location {
	return e.object().Location
}

// Properties is the object's decoded property stream.
func (e Entry) Properties() *Properties {
	return e.object().Properties
}

// GUID is the object's 128-bit identifier.
func (e Entry) GUID() string {
	return e.object().GUID.String()
}

// StatusComponent resolves the object's MyCharacterStatusComponent
// reference to the sibling Entry it names, if present and in range.
func (e Entry) StatusComponent() (Entry, bool) {
	return e.resolveRef(e.object().StatusRef)
}

// InventoryComponent resolves the object's MyInventoryComponent reference
// to the sibling Entry it names, if present and in range.
func (e Entry) InventoryComponent() (Entry, bool) {
	return e.resolveRef(e.object().InventoryRef)
}

func (e Entry) resolveRef(ref *int) (Entry, bool) {
	if ref == nil || *ref < 0 || *ref >= len(e.objects) {
		return Entry{}, false
	}
	return newEntry(e.objects, e.names, *ref), true
}

// MarshalJSON renders the entry as its underlying object, with class name,
// classification, and resolved components attached — matching
// original_source/src/object/serialize.rs's Serialize impl for Object.
func (e Entry) MarshalJSON() ([]byte, error) {
	return e.object().marshalJSON(e.names, e)
}
