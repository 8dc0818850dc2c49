package hexwar

import (
	"fmt"
	"slices"
	"strings"
)

type (
	MoveID     int
	InvasionID int
)

// Order commits one unit standing at Source.
type Order struct {
	Source Coord  `json:"source"`
	UnitID UnitID `json:"unit_id"`
}

// Move relocates every ordered unit into Target when the movement phase ends.
type Move struct {
	ID     MoveID  `json:"id"`
	Target Coord   `json:"target"`
	Orders []Order `json:"orders"`
}

// Invasion attacks Target with every ordered unit when the combat phase ends.
type Invasion struct {
	ID     InvasionID `json:"id"`
	Target Coord      `json:"target"`
	Player Player     `json:"player"`
	Orders []Order    `json:"orders"`
}

// Sources lists the distinct cells the orders start from, in order of first
// appearance.
func Sources(orders []Order) []Coord {
	var out []Coord
	for _, o := range orders {
		if !slices.Contains(out, o.Source) {
			out = append(out, o.Source)
		}
	}
	return out
}

func describe(id int, target Coord, orders []Order) string {
	srcs := make([]string, 0, len(orders))
	for _, c := range Sources(orders) {
		srcs = append(srcs, c.String())
	}
	units := make([]string, 0, len(orders))
	for _, o := range orders {
		units = append(units, fmt.Sprint(o.UnitID))
	}
	return fmt.Sprintf("#%d from %s to %s units [%s]", id,
		strings.Join(srcs, ", "), target, strings.Join(units, ", "))
}

func (m Move) Describe() string     { return describe(int(m.ID), m.Target, m.Orders) }
func (i Invasion) Describe() string { return describe(int(i.ID), i.Target, i.Orders) }

// OrderBook holds the moves and invasions pending for the current phase.
// Each destination carries at most one Move and at most one Invasion.
type OrderBook struct {
	Moves     []*Move     `json:"moves"`
	Invasions []*Invasion `json:"invasions"`
}

// MoveTo returns the pending move into target, if any.
func (b *OrderBook) MoveTo(target Coord) *Move {
	for _, m := range b.Moves {
		if m.Target == target {
			return m
		}
	}
	return nil
}

// InvasionOf returns the pending invasion of target, if any.
func (b *OrderBook) InvasionOf(target Coord) *Invasion {
	for _, inv := range b.Invasions {
		if inv.Target == target {
			return inv
		}
	}
	return nil
}

// CreateMove opens a new move into target. It panics if one already exists.
func (b *OrderBook) CreateMove(id MoveID, target Coord) *Move {
	if b.MoveTo(target) != nil {
		violate(ErrDuplicateMove, "target %s", target)
	}
	m := &Move{ID: id, Target: target}
	b.Moves = append(b.Moves, m)
	return m
}

// CreateInvasion opens a new invasion of target. It panics if one already
// exists.
func (b *OrderBook) CreateInvasion(id InvasionID, target Coord, p Player) *Invasion {
	if b.InvasionOf(target) != nil {
		violate(ErrDuplicateInvasion, "target %s", target)
	}
	inv := &Invasion{ID: id, Target: target, Player: p}
	b.Invasions = append(b.Invasions, inv)
	return inv
}

// AddMove appends the order to the move into target, creating it if needed,
// and tags the source and target cells with the move id.
func (b *OrderBook) AddMove(g *Grid, ids *IDAllocator, target Coord, o Order) *Move {
	m := b.MoveTo(target)
	if m == nil {
		m = b.CreateMove(ids.Move(), target)
		g.Cell(target).addMoveID(m.ID)
	}
	m.Orders = append(m.Orders, o)
	g.Cell(o.Source).addMoveID(m.ID)
	return m
}

// AddInvasion appends the order to the invasion of target, creating it if
// needed, and tags the source and target cells with the invasion id.
func (b *OrderBook) AddInvasion(g *Grid, ids *IDAllocator, target Coord, p Player, o Order) *Invasion {
	inv := b.InvasionOf(target)
	if inv == nil {
		inv = b.CreateInvasion(ids.Invasion(), target, p)
		g.Cell(target).addInvasionID(inv.ID)
	}
	inv.Orders = append(inv.Orders, o)
	g.Cell(o.Source).addInvasionID(inv.ID)
	return inv
}

// Clear drops every pending order.
func (b *OrderBook) Clear() {
	b.Moves = nil
	b.Invasions = nil
}

func (b OrderBook) clone() OrderBook {
	var n OrderBook
	for _, m := range b.Moves {
		c := *m
		c.Orders = slices.Clone(m.Orders)
		n.Moves = append(n.Moves, &c)
	}
	for _, inv := range b.Invasions {
		c := *inv
		c.Orders = slices.Clone(inv.Orders)
		n.Invasions = append(n.Invasions, &c)
	}
	return n
}

// commitMove relocates every unit of m into its target and returns the log
// line for it.
func commitMove(g *Grid, p Player, m *Move) string {
	target := g.Cell(m.Target)
	for _, o := range m.Orders {
		u, ok := g.Cell(o.Source).RemoveUnit(o.UnitID)
		if !ok {
			continue
		}
		if err := target.AddUnit(u); err != nil {
			violate(ErrMixedOccupancy, "%v", err)
		}
	}
	return fmt.Sprintf("%s moved to %s", p, m.Target)
}
