package hexwar

import (
	"fmt"
	"slices"
)

// CommandKind names a player input.
type CommandKind string

const (
	CmdPlaceReinforcement CommandKind = "place_reinforcement"
	CmdSelectCell         CommandKind = "select_cell"
	CmdSelectUnit         CommandKind = "select_unit"
	CmdAdvancePhase       CommandKind = "advance_phase"
)

// Command is a single player input. Coord is used by cell commands and
// UnitID by unit selection.
type Command struct {
	Kind   CommandKind `json:"type"`
	Coord  Coord       `json:"coord"`
	UnitID UnitID      `json:"unit_id,omitempty"`
}

func (c Command) String() string {
	switch c.Kind {
	case CmdPlaceReinforcement, CmdSelectCell:
		return fmt.Sprintf("%s %s", c.Kind, c.Coord)
	case CmdSelectUnit:
		return fmt.Sprintf("%s %d", c.Kind, c.UnitID)
	default:
		return string(c.Kind)
	}
}

// Apply runs cmd against gs. On success it returns the new state and the
// log lines the command produced. On rejection it returns gs itself together
// with a *RejectionError; gs is never modified.
//
// die is only rolled when the combat phase is resolved. A nil die falls back
// to a clock-seeded RandDie.
func Apply(gs *GameState, cmd Command, die Die) (*GameState, []string, error) {
	next := gs.Clone()
	before := len(next.Log)

	var err error
	switch cmd.Kind {
	case CmdPlaceReinforcement:
		err = next.placeReinforcement(cmd.Coord)
	case CmdSelectCell:
		err = next.selectCell(cmd.Coord)
	case CmdSelectUnit:
		err = next.selectUnit(cmd.UnitID)
	case CmdAdvancePhase:
		err = next.advancePhase(die)
	default:
		err = ErrUnknownCommand
	}
	if err != nil {
		return gs, nil, &RejectionError{Command: cmd, Phase: gs.Phase, Err: err}
	}
	return next, slices.Clone(next.Log[before:]), nil
}

// PlaceReinforcement puts a new unit from the reinforcement pool on c.
func PlaceReinforcement(gs *GameState, c Coord) (*GameState, []string, error) {
	return Apply(gs, Command{Kind: CmdPlaceReinforcement, Coord: c}, nil)
}

// SelectCell handles a click on c.
func SelectCell(gs *GameState, c Coord) (*GameState, []string, error) {
	return Apply(gs, Command{Kind: CmdSelectCell, Coord: c}, nil)
}

// SelectUnit picks a unit in the selected source cell.
func SelectUnit(gs *GameState, id UnitID) (*GameState, []string, error) {
	return Apply(gs, Command{Kind: CmdSelectUnit, UnitID: id}, nil)
}

// AdvancePhase ends the current phase, committing moves or resolving combat.
func AdvancePhase(gs *GameState, die Die) (*GameState, []string, error) {
	return Apply(gs, Command{Kind: CmdAdvancePhase}, die)
}

func (gs *GameState) placeReinforcement(c Coord) error {
	if gs.Phase != PhasePlaceReinforcements {
		return ErrWrongPhase
	}
	if gs.RemainingReinforcements < 1 {
		return ErrNoReinforcements
	}
	cell := gs.Grid.Cell(c)
	if cell == nil {
		return ErrOutOfBounds
	}
	if !cell.CanPlace(gs.CurrentPlayer) {
		return ErrCannotPlace
	}
	if cell.HeldByEnemyOf(gs.CurrentPlayer) {
		return ErrEnemyOccupied
	}
	u := gs.Rules.UnitTemplate.NewUnit(gs.IDs.Unit(), gs.CurrentPlayer)
	if err := cell.AddUnit(u); err != nil {
		return err
	}
	gs.RemainingReinforcements--
	gs.log(fmt.Sprintf("%s placed a soldier at %s", gs.CurrentPlayer, c))
	return nil
}

func (gs *GameState) selectCell(c Coord) error {
	cell := gs.Grid.Cell(c)
	if cell == nil {
		return ErrOutOfBounds
	}

	switch gs.Phase {
	case PhasePlaceReinforcements:
		return gs.placeReinforcement(c)

	case PhaseMovementSelectingCell, PhaseCombatSelectingCell:
		gs.Selection.Inspected = &c
		if !cell.HeldBy(gs.CurrentPlayer) {
			return nil
		}
		gs.Selection.Source = &c
		if gs.Phase == PhaseMovementSelectingCell {
			gs.Phase = PhaseMovementSelectingUnit
		} else {
			gs.Phase = PhaseCombatSelectingUnit
		}
		return nil

	case PhaseMovementSelectingUnit, PhaseCombatSelectingUnit:
		if gs.isSource(c) {
			gs.cancelSelection()
			return nil
		}
		if !cell.HeldBy(gs.CurrentPlayer) {
			return ErrNotOwnCell
		}
		gs.Selection.Source = &c
		gs.Selection.Inspected = &c
		return nil

	case PhaseSelectingMove, PhaseSelectingCombat:
		if gs.isSource(c) {
			gs.cancelSelection()
			return nil
		}
		if !gs.Selection.Destinations.Has(c) {
			return ErrIllegalDestination
		}
		gs.commitOrder(c)
		return nil
	}
	return ErrWrongPhase
}

func (gs *GameState) isSource(c Coord) bool {
	return gs.Selection.Source != nil && *gs.Selection.Source == c
}

// cancelSelection drops the selection in progress and returns to cell
// selection for the current phase.
func (gs *GameState) cancelSelection() {
	if gs.Phase.IsMovement() {
		gs.Phase = PhaseMovementSelectingCell
	} else if gs.Phase.IsCombat() {
		gs.Phase = PhaseCombatSelectingCell
	}
	gs.Selection = Selection{}
	gs.Grid.ClearHighlights()
}

// commitOrder adds the selected unit to the move or invasion bound for
// target and marks the unit as spent for this phase.
func (gs *GameState) commitOrder(target Coord) {
	src := *gs.Selection.Source
	id := *gs.Selection.Unit
	cell := gs.Grid.Cell(src)
	u, _ := cell.Unit(id)
	order := Order{Source: src, UnitID: id}

	if gs.Phase == PhaseSelectingMove {
		gs.Orders.AddMove(gs.Grid, &gs.IDs, target, order)
		u.HasMovedThisTurn = true
	} else {
		gs.Orders.AddInvasion(gs.Grid, &gs.IDs, target, gs.CurrentPlayer, order)
		u.HasAttackedThisTurn = true
	}
	cell.updateUnit(u)
	gs.cancelSelection()
}

func (gs *GameState) selectUnit(id UnitID) error {
	if gs.Phase != PhaseMovementSelectingUnit && gs.Phase != PhaseCombatSelectingUnit {
		return ErrWrongPhase
	}
	src := *gs.Selection.Source
	u, ok := gs.Grid.Cell(src).Unit(id)
	if !ok {
		return ErrUnitNotFound
	}
	if u.Player != gs.CurrentPlayer {
		return ErrWrongPlayer
	}

	var dests CoordSet
	if gs.Phase == PhaseMovementSelectingUnit {
		if u.HasMovedThisTurn {
			return ErrAlreadyMoved
		}
		dests = LegalMoves(gs.Grid, u, src)
		if len(dests) == 0 {
			return ErrNoMoves
		}
		for c := range dests {
			gs.Grid.Cell(c).LegalMove = true
		}
		gs.Phase = PhaseSelectingMove
	} else {
		if u.HasAttackedThisTurn {
			return ErrAlreadyAttacked
		}
		dests = LegalTargets(gs.Grid, u, src)
		if len(dests) == 0 {
			return ErrNoTargets
		}
		for c := range dests {
			gs.Grid.Cell(c).LegalInvasion = true
		}
		gs.Phase = PhaseSelectingCombat
	}
	gs.Selection.Unit = &id
	gs.Selection.Destinations = dests
	return nil
}

// LegalMoves is the set of cells u may move to from src: reachable, not src
// itself and not held by the enemy.
func LegalMoves(g *Grid, u Unit, src Coord) CoordSet {
	out := CoordSet{}
	for c := range u.Moves(g, src) {
		if c == src || g.Cell(c).HeldByEnemyOf(u.Player) {
			continue
		}
		out.Add(c)
	}
	return out
}

// LegalTargets is the set of enemy-held cells u may attack from src.
func LegalTargets(g *Grid, u Unit, src Coord) CoordSet {
	out := CoordSet{}
	for c := range u.Targets(g, src) {
		if g.Cell(c).HeldByEnemyOf(u.Player) {
			out.Add(c)
		}
	}
	return out
}

func (gs *GameState) advancePhase(die Die) error {
	switch gs.Phase {
	case PhasePlaceReinforcements:
		gs.Phase = PhaseMovementSelectingCell
		gs.Selection = Selection{}
		gs.log(fmt.Sprintf("%s ended placing reinforcements, moving on to the movement phase.", gs.CurrentPlayer))
		return nil

	case PhaseMovementSelectingCell:
		for _, m := range gs.Orders.Moves {
			gs.log(commitMove(gs.Grid, gs.CurrentPlayer, m))
		}
		gs.Orders.Moves = nil
		gs.Grid.clearMoveIDs()
		gs.Grid.ClearHighlights()
		gs.Selection = Selection{}
		gs.Phase = PhaseCombatSelectingCell
		gs.log(fmt.Sprintf("%s is entering the combat phase.", gs.CurrentPlayer))
		return nil

	case PhaseCombatSelectingCell:
		if die == nil {
			die = NewRandDie(0)
		}
		gs.Combats = nil
		for _, inv := range gs.Orders.Invasions {
			rep := ResolveInvasion(gs.Grid, inv, die)
			gs.Combats = append(gs.Combats, rep)
			gs.log(rep.Message)
		}
		gs.Orders.Invasions = nil
		gs.Grid.clearInvasionIDs()
		gs.endTurn()
		return nil

	case PhaseMovementSelectingUnit, PhaseSelectingMove, PhaseCombatSelectingUnit, PhaseSelectingCombat:
		return ErrSelectionInProgress
	}
	return ErrWrongPhase
}

// endTurn hands the board to the other player. Only the incoming player's
// units get their per-turn flags reset.
func (gs *GameState) endTurn() {
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	gs.Phase = PhasePlaceReinforcements
	gs.RemainingReinforcements = gs.Rules.ReinforcementsPerTurn
	gs.Orders.Clear()
	gs.Selection = Selection{}
	gs.Grid.ClearHighlights()
	gs.Grid.clearMoveIDs()
	gs.Grid.clearInvasionIDs()
	gs.Turn++

	for _, cell := range gs.Grid.Cells() {
		if !cell.HeldBy(gs.CurrentPlayer) {
			continue
		}
		for _, u := range cell.Units() {
			u.HasMovedThisTurn = false
			u.HasAttackedThisTurn = false
			cell.updateUnit(u)
		}
	}
	gs.log(turnBanner(gs))
}
