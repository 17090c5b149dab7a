// Package ue holds the handful of Unreal-Engine-derived primitives the save
// format embeds directly in its object directory: the interned Name
// reference and the 128-bit object GUID. Everything else in the teacher's
// original ue package (FString, FVector, FQuaternion, FTransform,
// FTopLevelAssetPath) either folded into reader.Reader.ReadString or moved
// into ark.Value, since this format encodes vectors/quats as struct
// properties rather than as standalone UE structs.
package ue

import "ark-save-parser/reader"

// Name is a pair (id, instance): id indexes into the save's Name Table,
// instance disambiguates repeated class names. id == 0 is the table's
// reserved placeholder slot and never denotes a real name.
type Name struct {
	ID       uint32
	Instance uint32
}

// ReadName reads the (id, instance) pair as it appears in both the property
// stream header and the object directory.
func ReadName(r reader.Reader) (Name, error) {
	id, err := r.ReadU32()
	if err != nil {
		return Name{}, err
	}
	instance, err := r.ReadU32()
	if err != nil {
		return Name{}, err
	}
	return Name{ID: id, Instance: instance}, nil
}

// GUID is the object directory's 128-bit identifier, stored and compared as
// raw bytes rather than split into the UE FGuid A/B/C/D quad — nothing in
// this format interprets the sub-fields individually.
type GUID [16]byte

// ReadGUID reads the 16-byte object identifier.
func ReadGUID(r reader.Reader) (GUID, error) {
	b, err := r.ReadU128()
	return GUID(b), err
}

const hexDigits = "0123456789abcdef"

// String renders the GUID as lowercase hex, matching how the teacher's debug
// dumps rendered binary identifiers.
func (g GUID) String() string {
	buf := make([]byte, len(g)*2)
	for i, b := range g {
		buf[i*2] = hexDigits[b>>4]
		buf[i*2+1] = hexDigits[b&0xF]
	}
	return string(buf)
}

// MarshalJSON renders the GUID as a hex string rather than a byte array.
func (g GUID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + g.String() + `"`), nil
}
