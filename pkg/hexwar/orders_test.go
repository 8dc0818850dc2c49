package hexwar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook_DuplicateMovePanics(t *testing.T) {
	var b OrderBook
	b.CreateMove(1, C(1, 1))
	requireInvariant(t, ErrDuplicateMove, func() {
		b.CreateMove(2, C(1, 1))
	})
}

func TestOrderBook_DuplicateInvasionPanics(t *testing.T) {
	var b OrderBook
	b.CreateInvasion(1, C(2, 0), Blue)
	requireInvariant(t, ErrDuplicateInvasion, func() {
		b.CreateInvasion(2, C(2, 0), Blue)
	})
}

func TestOrderBook_MoveAndInvasionMayShareTarget(t *testing.T) {
	var b OrderBook
	b.CreateMove(1, C(1, 1))
	assert.NotPanics(t, func() { b.CreateInvasion(1, C(1, 1), Green) })
}

func TestOrderBook_AddMoveAggregatesPerDestination(t *testing.T) {
	g := NewGrid(4, 2)
	var ids IDAllocator
	var b OrderBook

	m1 := b.AddMove(g, &ids, C(2, 0), Order{Source: C(0, 0), UnitID: 1})
	m2 := b.AddMove(g, &ids, C(2, 0), Order{Source: C(1, 1), UnitID: 2})
	m3 := b.AddMove(g, &ids, C(3, 0), Order{Source: C(0, 0), UnitID: 3})

	require.Same(t, m1, m2)
	assert.NotEqual(t, m1.ID, m3.ID)
	require.Len(t, b.Moves, 2)
	assert.Len(t, m1.Orders, 2)
	assert.Equal(t, []Coord{C(0, 0), C(1, 1)}, Sources(m1.Orders))

	assert.Equal(t, []MoveID{m1.ID, m3.ID}, g.Cell(C(0, 0)).MoveIDs())
	assert.Equal(t, []MoveID{m1.ID}, g.Cell(C(2, 0)).MoveIDs())
	assert.Equal(t, []MoveID{m1.ID}, g.Cell(C(1, 1)).MoveIDs())
}

func TestOrderBook_AddInvasionAggregatesPerDestination(t *testing.T) {
	g := NewGrid(4, 1)
	var ids IDAllocator
	var b OrderBook

	a := b.AddInvasion(g, &ids, C(2, 0), Blue, Order{Source: C(1, 0), UnitID: 1})
	c := b.AddInvasion(g, &ids, C(2, 0), Blue, Order{Source: C(3, 0), UnitID: 2})

	require.Same(t, a, c)
	assert.Len(t, b.Invasions, 1)
	assert.Equal(t, InvasionID(1), a.ID)
	assert.Equal(t, []InvasionID{1}, g.Cell(C(3, 0)).InvasionIDs())
}

func TestOrderBook_CloneIndependent(t *testing.T) {
	g := NewGrid(3, 1)
	var ids IDAllocator
	var b OrderBook
	b.AddMove(g, &ids, C(1, 0), Order{Source: C(0, 0), UnitID: 1})

	c := b.clone()
	c.Moves[0].Orders = append(c.Moves[0].Orders, Order{Source: C(2, 0), UnitID: 2})
	assert.Len(t, b.Moves[0].Orders, 1)
}

func TestMove_Describe(t *testing.T) {
	m := Move{ID: 3, Target: C(2, 1), Orders: []Order{{Source: C(1, 1), UnitID: 4}, {Source: C(1, 1), UnitID: 5}}}
	assert.Equal(t, "#3 from [1, 1] to [2, 1] units [4, 5]", m.Describe())
}

func TestCommitMove(t *testing.T) {
	g := NewGrid(3, 1)
	stats := DefaultUnitStats()
	require.NoError(t, g.Cell(C(0, 0)).AddUnit(stats.NewUnit(1, Blue)))
	m := &Move{ID: 1, Target: C(2, 0), Orders: []Order{{Source: C(0, 0), UnitID: 1}, {Source: C(0, 0), UnitID: 9}}}

	line := commitMove(g, Blue, m)

	assert.Equal(t, "BLUE moved to [2, 0]", line)
	assert.Zero(t, g.Cell(C(0, 0)).Len())
	assert.Equal(t, 1, g.Cell(C(2, 0)).Len())
}
