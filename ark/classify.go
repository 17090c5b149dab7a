package ark

import (
	"regexp"
	"strings"
)

// Type is the closed set of semantic classifications the Classifier
// assigns to every decoded object, grounded verbatim on
// original_source/src/object/object.rs's Type enum.
type Type string

const (
	TypeDeathItemCache             Type = "DeathItemCache"
	TypeDroppedItem                Type = "DroppedItem"
	TypeFertilizedEgg              Type = "FertilizedEgg"
	TypeGame                       Type = "Game"
	TypeItem                       Type = "Item"
	TypePlayer                     Type = "Player"
	TypePlayerInventory            Type = "PlayerInventory"
	TypeRaft                       Type = "Raft"
	TypeStatusValues               Type = "StatusValues"
	TypeStructure                  Type = "Structure"
	TypeStructureInventory         Type = "StructureInventory"
	TypeStructurePaintingComponent Type = "StructurePaintingComponent"
	TypeTamedCreature              Type = "TamedCreature"
	TypeTamedInventory             Type = "TamedInventory"
	TypeUnknown                    Type = "Unknown"
	TypeWildCreature               Type = "WildCreature"
	TypeWildCreatureInventory      Type = "WildCreatureInventory"
)

// eggRegexp matches fertilized-egg class names; compiled once, as
// spec.md §4.5 requires.
var eggRegexp = regexp.MustCompile(`Egg.*Fertilized`)

// classify assigns a Type from the class name, the is_item flag, and the
// decoded properties. Rules are evaluated top-to-bottom; the first match
// wins (spec.md §4.5 / original_source's Object::new match).
func classify(class string, isItem bool, props *Properties) Type {
	switch {
	case isItem:
		if eggRegexp.MatchString(class) {
			return TypeFertilizedEgg
		}
		return TypeItem

	case props.Has("OwnerName") || props.Has("bHasResetDecayTime"):
		if strings.HasPrefix(class, "DeathItemCache_") {
			return TypeDeathItemCache
		}
		return TypeStructure

	case strings.HasPrefix(class, "DinoTamedInventoryComponent_"):
		return TypeTamedInventory

	case props.Has("bInitializedMe"):
		switch {
		case strings.HasPrefix(class, "PrimalInventoryBP_"):
			return TypeStructureInventory
		case strings.HasPrefix(class, "PrimalInventoryComponent"):
			return TypePlayerInventory
		case strings.HasPrefix(class, "DinoWildInventoryComponent_"):
			return TypeWildCreatureInventory
		default:
			return TypeUnknown
		}

	case class == "Raft_BP_C" || class == "MotorRaft_BP_C":
		return TypeRaft

	case props.Has("DinoID1"):
		if props.Has("TamerString") || props.Has("TamingTeamID") {
			return TypeTamedCreature
		}
		return TypeWildCreature

	case props.Has("CurrentStatusValues"):
		return TypeStatusValues

	case class == "StructurePaintingComponent":
		return TypeStructurePaintingComponent

	case strings.HasPrefix(class, "DroppedItem"):
		return TypeDroppedItem

	case class == "PlayerPawnTest_Male_C" || class == "PlayerPawnTest_Female_C":
		return TypePlayer

	case strings.HasPrefix(class, "BossArenaManager") ||
		class == "ShooterGameState" ||
		class == "TestGameMode_C" ||
		strings.HasPrefix(class, "NPCZoneManager") ||
		strings.HasPrefix(class, "WeapFists") ||
		strings.HasSuffix(class, "Manager") ||
		strings.HasSuffix(class, "Actor"):
		return TypeGame

	default:
		return TypeUnknown
	}
}
