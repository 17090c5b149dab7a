// Package export filters a save's entries by classification into the four
// output JSON files spec.md's CLI contract names: wild.json, tames.json,
// nursery.json, cryopods.json. Serialization goes straight through
// encoding/json over ark.Entry/ark.Value's MarshalJSON implementations —
// the one component spec.md explicitly scopes out as "an opaque encoder",
// so no domain-stack JSON library substitutes for the standard library
// here (SPEC_FULL.md §4.12).
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ark-save-parser/ark"
	"ark-save-parser/latlong"
)

var (
	wildTypes = map[ark.Type]bool{
		ark.TypeWildCreature:          true,
		ark.TypeWildCreatureInventory: true,
	}
	tameTypes = map[ark.Type]bool{
		ark.TypeTamedCreature:      true,
		ark.TypeTamedInventory:     true,
		ark.TypeStatusValues:       true,
		ark.TypePlayer:             true,
		ark.TypePlayerInventory:    true,
		ark.TypeStructureInventory: true,
	}
	nurseryTypes = map[ark.Type]bool{
		ark.TypeFertilizedEgg: true,
	}
)

// entryWithLatLong attaches projected coordinates to an entry that carries
// a Location, without changing ark.Entry's own JSON shape.
type entryWithLatLong struct {
	ark.Entry
	Lat float32 `json:"lat"`
	Lon float32 `json:"lon"`
}

func (e entryWithLatLong) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(e.Entry)
	if err != nil {
		return nil, err
	}
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(base, &flat); err != nil {
		return nil, err
	}
	lat, err := json.Marshal(e.Lat)
	if err != nil {
		return nil, err
	}
	lon, err := json.Marshal(e.Lon)
	if err != nil {
		return nil, err
	}
	flat["lat"] = lat
	flat["lon"] = lon
	return json.Marshal(flat)
}

func withProjection(e ark.Entry, proj latlong.Projection) json.Marshaler {
	loc := e.Location()
	if loc == nil {
		return e
	}
	return entryWithLatLong{Entry: e, Lat: proj.Latitude(*loc), Lon: proj.Longitude(*loc)}
}

// Write partitions entries into wild/tames/nursery/cryopods and writes each
// non-empty set as its own JSON file under dir, creating dir if needed.
// Cryopod contents are every entry at or past cryopodStart (the outer
// object count, as reported by Save.CryopodStart), whatever its type; such
// entries go only to cryopods.json. Entries of a type outside the wild,
// tames, and nursery sets are not written.
func Write(dir string, entries []ark.Entry, cryopodStart int, proj latlong.Projection) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	var wild, tames, nursery, cryopods []json.Marshaler

	for _, e := range entries {
		rendered := withProjection(e, proj)
		switch {
		case e.Index() >= cryopodStart:
			cryopods = append(cryopods, rendered)
		case wildTypes[e.Type()]:
			wild = append(wild, rendered)
		case tameTypes[e.Type()]:
			tames = append(tames, rendered)
		case nurseryTypes[e.Type()]:
			nursery = append(nursery, rendered)
		}
	}

	files := map[string][]json.Marshaler{
		"wild.json":     wild,
		"tames.json":    tames,
		"nursery.json":  nursery,
		"cryopods.json": cryopods,
	}
	for name, set := range files {
		if len(set) == 0 {
			continue
		}
		if err := writeJSON(filepath.Join(dir, name), set); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
