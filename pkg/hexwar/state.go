package hexwar

import (
	"maps"
	"slices"
)

// Phase is the step of the turn the current player is in.
type Phase string

const (
	PhasePlaceReinforcements Phase = "PLACE_REINFORCEMENTS"

	PhaseMovementSelectingCell Phase = "MOVEMENT_SELECTING_CELL"
	PhaseMovementSelectingUnit Phase = "MOVEMENT_SELECTING_SOLDIER"
	PhaseSelectingMove         Phase = "SELECTING_MOVE"

	PhaseCombatSelectingCell Phase = "COMBAT_SELECTING_CELL"
	PhaseCombatSelectingUnit Phase = "COMBAT_SELECTING_SOLDIER"
	PhaseSelectingCombat     Phase = "SELECTING_COMBAT"
)

// IsMovement reports whether p belongs to the movement phase.
func (p Phase) IsMovement() bool {
	return p == PhaseMovementSelectingCell || p == PhaseMovementSelectingUnit || p == PhaseSelectingMove
}

// IsCombat reports whether p belongs to the combat planning phase.
func (p Phase) IsCombat() bool {
	return p == PhaseCombatSelectingCell || p == PhaseCombatSelectingUnit || p == PhaseSelectingCombat
}

// Selection is the click context of the current phase.
type Selection struct {
	Source       *Coord   `json:"source,omitempty"`
	Unit         *UnitID  `json:"unit,omitempty"`
	Destinations CoordSet `json:"-"`
	Inspected    *Coord   `json:"inspected,omitempty"`
}

func (s Selection) clone() Selection {
	n := Selection{Destinations: maps.Clone(s.Destinations)}
	if s.Source != nil {
		c := *s.Source
		n.Source = &c
	}
	if s.Unit != nil {
		id := *s.Unit
		n.Unit = &id
	}
	if s.Inspected != nil {
		c := *s.Inspected
		n.Inspected = &c
	}
	return n
}

// Rules are the per-game constants fixed at setup.
type Rules struct {
	ReinforcementsPerTurn int       `json:"reinforcements_per_turn"`
	UnitTemplate          UnitStats `json:"unit_template"`
}

// GameState is the whole game at one point in time. Transitions never mutate
// a state in place; they return a modified clone.
type GameState struct {
	Phase                   Phase
	CurrentPlayer           Player
	RemainingReinforcements int
	Turn                    int
	Grid                    *Grid
	Orders                  OrderBook
	Selection               Selection
	IDs                     IDAllocator
	Rules                   Rules

	// Log is append-only, oldest first.
	Log []string

	// Combats holds the reports of the most recently resolved combat phase.
	Combats []CombatReport
}

func (gs *GameState) log(lines ...string) {
	gs.Log = append(gs.Log, lines...)
}

// Clone returns a deep copy of the state.
func (gs *GameState) Clone() *GameState {
	c := &GameState{
		Phase:                   gs.Phase,
		CurrentPlayer:           gs.CurrentPlayer,
		RemainingReinforcements: gs.RemainingReinforcements,
		Turn:                    gs.Turn,
		Grid:                    gs.Grid.Clone(),
		Orders:                  gs.Orders.clone(),
		Selection:               gs.Selection.clone(),
		IDs:                     gs.IDs,
		Rules:                   gs.Rules,
		Log:                     slices.Clone(gs.Log),
		Combats:                 slices.Clone(gs.Combats),
	}
	return c
}
