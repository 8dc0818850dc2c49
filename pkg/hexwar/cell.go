package hexwar

import (
	"fmt"
	"slices"
)

// City is a named settlement. Reinforcements may only be placed in a city
// owned by the placing player.
type City struct {
	Name   string `json:"name"`
	Player Player `json:"player"`
}

// Cell is one hex of the board.
type Cell struct {
	Coord         Coord
	Terrain       TerrainType
	Fortification FortificationType
	City          *City

	units map[UnitID]Unit

	// Highlights for the selection in progress. Cleared at phase boundaries.
	LegalMove     bool
	LegalInvasion bool

	moveIDs     []MoveID
	invasionIDs []InvasionID
}

func newCell(c Coord) *Cell {
	return &Cell{Coord: c, units: make(map[UnitID]Unit)}
}

// Units returns a copy of the occupants ordered by id.
func (c *Cell) Units() []Unit {
	out := make([]Unit, 0, len(c.units))
	for _, u := range c.units {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b Unit) int { return int(a.ID - b.ID) })
	return out
}

// Unit looks up an occupant by id.
func (c *Cell) Unit(id UnitID) (Unit, bool) {
	u, ok := c.units[id]
	return u, ok
}

// Len is the number of occupants.
func (c *Cell) Len() int { return len(c.units) }

// Player returns the side occupying the cell, if any.
func (c *Cell) Player() (Player, bool) {
	for _, u := range c.units {
		return u.Player, true
	}
	return "", false
}

// HeldBy reports whether p occupies the cell.
func (c *Cell) HeldBy(p Player) bool {
	owner, ok := c.Player()
	return ok && owner == p
}

// HeldByEnemyOf reports whether the opponent of p occupies the cell.
func (c *Cell) HeldByEnemyOf(p Player) bool {
	owner, ok := c.Player()
	return ok && owner != p
}

// CanPlace reports whether p may put a reinforcement here.
func (c *Cell) CanPlace(p Player) bool {
	return c.City != nil && c.City.Player == p
}

// AddUnit puts u into the cell. A cell never holds units of both players.
func (c *Cell) AddUnit(u Unit) error {
	if c.HeldByEnemyOf(u.Player) {
		return fmt.Errorf("add unit %d to %s: %w", u.ID, c.Coord, ErrMixedOccupancy)
	}
	c.units[u.ID] = u
	return nil
}

// RemoveUnit takes the unit out of the cell. Removing an absent unit is a
// no-op and reports false.
func (c *Cell) RemoveUnit(id UnitID) (Unit, bool) {
	u, ok := c.units[id]
	if ok {
		delete(c.units, id)
	}
	return u, ok
}

// KillOccupants empties the cell and returns the removed units.
func (c *Cell) KillOccupants() []Unit {
	dead := c.Units()
	clear(c.units)
	return dead
}

func (c *Cell) updateUnit(u Unit) {
	if _, ok := c.units[u.ID]; ok {
		c.units[u.ID] = u
	}
}

// AttackModifier is the terrain plus fortification bonus for attacks launched
// from this cell.
func (c *Cell) AttackModifier() int {
	return c.Terrain.AttackModifier() + c.Fortification.AttackModifier()
}

// DefenceModifier is the terrain plus fortification bonus for defenders.
func (c *Cell) DefenceModifier() int {
	return c.Terrain.DefenceModifier() + c.Fortification.DefenceModifier()
}

// Attack aggregates every occupant's attack with the cell's modifiers.
func (c *Cell) Attack() Strength {
	total := Strength{Modifier: c.AttackModifier()}
	for _, u := range c.units {
		total = total.Plus(u.AttackStrength())
	}
	return total
}

// Defence aggregates every occupant's defence with the cell's modifiers.
func (c *Cell) Defence() Strength {
	total := Strength{Modifier: c.DefenceModifier()}
	for _, u := range c.units {
		total = total.Plus(u.DefenceStrength())
	}
	return total
}

// MoveIDs lists pending moves that start or end here.
func (c *Cell) MoveIDs() []MoveID { return slices.Clone(c.moveIDs) }

// InvasionIDs lists pending invasions that start or end here.
func (c *Cell) InvasionIDs() []InvasionID { return slices.Clone(c.invasionIDs) }

func (c *Cell) addMoveID(id MoveID) {
	if !slices.Contains(c.moveIDs, id) {
		c.moveIDs = append(c.moveIDs, id)
	}
}

func (c *Cell) addInvasionID(id InvasionID) {
	if !slices.Contains(c.invasionIDs, id) {
		c.invasionIDs = append(c.invasionIDs, id)
	}
}

func (c *Cell) clearHighlights() {
	c.LegalMove = false
	c.LegalInvasion = false
}

func (c *Cell) clone() *Cell {
	n := &Cell{
		Coord:         c.Coord,
		Terrain:       c.Terrain,
		Fortification: c.Fortification,
		LegalMove:     c.LegalMove,
		LegalInvasion: c.LegalInvasion,
		units:         make(map[UnitID]Unit, len(c.units)),
		moveIDs:       slices.Clone(c.moveIDs),
		invasionIDs:   slices.Clone(c.invasionIDs),
	}
	if c.City != nil {
		city := *c.City
		n.City = &city
	}
	for id, u := range c.units {
		n.units[id] = u
	}
	return n
}
