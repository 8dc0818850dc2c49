package hexwar

import "fmt"

// TerrainType is the ground a cell is made of.
type TerrainType int

const (
	Plain TerrainType = iota
	Forest
	Mountain
)

type terrainStats struct {
	name         string
	movementCost int
	attackMod    int
	defenceMod   int
}

var terrainTable = [...]terrainStats{
	Plain:    {"PLAIN", 1, 0, 0},
	Forest:   {"FOREST", 2, 0, 1},
	Mountain: {"MOUNTAIN", 4, -1, 1},
}

func (t TerrainType) stats() terrainStats {
	if t < 0 || int(t) >= len(terrainTable) {
		return terrainTable[Plain]
	}
	return terrainTable[t]
}

// MovementCost is what entering a cell of this terrain costs.
func (t TerrainType) MovementCost() int { return t.stats().movementCost }

// AttackModifier applies to attacks launched from this terrain.
func (t TerrainType) AttackModifier() int { return t.stats().attackMod }

// DefenceModifier applies to units defending on this terrain.
func (t TerrainType) DefenceModifier() int { return t.stats().defenceMod }

func (t TerrainType) String() string { return t.stats().name }

// Letter is a one-character board glyph.
func (t TerrainType) Letter() string {
	switch t {
	case Forest:
		return "F"
	case Mountain:
		return "M"
	default:
		return "."
	}
}

func (t TerrainType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TerrainType) UnmarshalText(b []byte) error {
	for i, s := range terrainTable {
		if s.name == string(b) {
			*t = TerrainType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown terrain %q", b)
}

// FortificationType is a man-made defensive work on a cell.
type FortificationType int

const (
	NoFortification FortificationType = iota
	Trenches
	Fortress
)

type fortificationStats struct {
	name       string
	attackMod  int
	defenceMod int
}

var fortificationTable = [...]fortificationStats{
	NoFortification: {"NONE", 0, 0},
	Trenches:        {"TRENCHES", 0, 1},
	Fortress:        {"FORTRESS", 0, 2},
}

func (f FortificationType) stats() fortificationStats {
	if f < 0 || int(f) >= len(fortificationTable) {
		return fortificationTable[NoFortification]
	}
	return fortificationTable[f]
}

func (f FortificationType) AttackModifier() int  { return f.stats().attackMod }
func (f FortificationType) DefenceModifier() int { return f.stats().defenceMod }
func (f FortificationType) String() string       { return f.stats().name }

func (f FortificationType) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *FortificationType) UnmarshalText(b []byte) error {
	for i, s := range fortificationTable {
		if s.name == string(b) {
			*f = FortificationType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown fortification %q", b)
}
