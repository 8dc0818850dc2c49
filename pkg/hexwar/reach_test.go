package hexwar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveReachable is the plain branching recursion Reachable must agree with.
func naiveReachable(g *Grid, c Coord, budget int) CoordSet {
	out := CoordSet{}
	switch {
	case budget < 0:
	case budget == 0:
		out.Add(c)
	default:
		for _, n := range c.Neighbors() {
			cell := g.Cell(n)
			if cell == nil {
				continue
			}
			for r := range naiveReachable(g, n, budget-cell.Terrain.MovementCost()) {
				out.Add(r)
			}
		}
	}
	return out
}

func defaultGrid(t *testing.T) *Grid {
	t.Helper()
	gs, err := NewGame(DefaultSetup(9, 6))
	require.NoError(t, err)
	return gs.Grid
}

func TestReachable_Budgets(t *testing.T) {
	g := defaultGrid(t)
	assert.Empty(t, Reachable(g, C(2, 2), -1))
	assert.Equal(t, NewCoordSet(C(2, 2)), Reachable(g, C(2, 2), 0))
}

func TestReachable_ExactCost(t *testing.T) {
	g := NewGrid(3, 1)
	assert.Equal(t, NewCoordSet(C(1, 0)), Reachable(g, C(0, 0), 1))
	assert.Equal(t, NewCoordSet(C(0, 0), C(2, 0)), Reachable(g, C(0, 0), 2))

	g.SetTerrain(C(1, 0), Forest)
	assert.Empty(t, Reachable(g, C(0, 0), 1))
	assert.Equal(t, NewCoordSet(C(1, 0)), Reachable(g, C(0, 0), 2))
}

func TestReachable_MatchesNaiveRecursion(t *testing.T) {
	g := defaultGrid(t)
	g.SetFortification(C(2, 1), Fortress)
	starts := []Coord{C(0, 0), C(2, 2), C(1, 3), C(4, 2), C(6, 5), C(-2, 5)}
	for _, start := range starts {
		for budget := -1; budget <= 6; budget++ {
			want := naiveReachable(g, start, budget)
			got := Reachable(g, start, budget)
			assert.Equal(t, want, got, "from %s with budget %d", start, budget)
		}
	}
}

func TestReachable_InBoundsOnly(t *testing.T) {
	g := defaultGrid(t)
	for c := range Reachable(g, C(0, 0), 5) {
		assert.True(t, g.InBounds(c), "%s is off the board", c)
	}
}

func TestUnit_SpentBudgets(t *testing.T) {
	g := NewGrid(3, 1)
	u := DefaultUnitStats().NewUnit(1, Blue)
	u.BaseMovement = 1

	assert.Equal(t, NewCoordSet(C(1, 0)), u.Moves(g, C(0, 0)))
	u.HasMovedThisTurn = true
	assert.Equal(t, 0, u.Movement())
	assert.Equal(t, NewCoordSet(C(0, 0)), u.Moves(g, C(0, 0)))

	u.HasAttackedThisTurn = true
	assert.Equal(t, 0, u.AttackRange())
}

func TestCoordSet_Sorted(t *testing.T) {
	s := NewCoordSet(C(2, 1), C(0, 1), C(5, 0))
	assert.Equal(t, []Coord{C(5, 0), C(0, 1), C(2, 1)}, s.Sorted())
}
