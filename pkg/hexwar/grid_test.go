package hexwar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardIndex_Shape(t *testing.T) {
	rows := BoardIndex(6, 9)
	require.Len(t, rows, 6)

	firstQ := []int{0, 0, -1, -1, -2, -2}
	for r, row := range rows {
		require.Len(t, row, 9, "row %d", r)
		for i, c := range row {
			assert.Equal(t, r, c.R)
			assert.Equal(t, firstQ[r]+i, c.Q)
		}
	}
}

func TestGrid_InBounds(t *testing.T) {
	g := NewGrid(9, 6)
	assert.True(t, g.InBounds(C(0, 0)))
	assert.True(t, g.InBounds(C(-2, 5)))
	assert.True(t, g.InBounds(C(6, 5)))
	assert.False(t, g.InBounds(C(-1, 0)))
	assert.False(t, g.InBounds(C(9, 0)))
	assert.False(t, g.InBounds(C(7, 5)))
	assert.False(t, g.InBounds(C(0, 6)))
	assert.Nil(t, g.Cell(C(0, -1)))
	assert.Len(t, g.Coords(), 54)
}

func TestGrid_SetOffBoardIsIgnored(t *testing.T) {
	g := NewGrid(2, 2)
	assert.False(t, g.SetTerrain(C(5, 5), Forest))
	assert.False(t, g.SetFortification(C(5, 5), Fortress))
	assert.False(t, g.SetCity(C(5, 5), City{Name: "Nowhere", Player: Blue}))
	assert.True(t, g.SetTerrain(C(1, 1), Mountain))
	assert.Equal(t, Mountain, g.Cell(C(1, 1)).Terrain)
}

func TestGrid_CloneIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetCity(C(0, 0), City{Name: "A", Player: Blue})
	require.NoError(t, g.Cell(C(0, 0)).AddUnit(DefaultUnitStats().NewUnit(1, Blue)))

	c := g.Clone()
	c.Cell(C(0, 0)).KillOccupants()
	c.Cell(C(0, 0)).City.Name = "B"
	c.SetTerrain(C(1, 1), Forest)

	assert.Equal(t, 1, g.Cell(C(0, 0)).Len())
	assert.Equal(t, "A", g.Cell(C(0, 0)).City.Name)
	assert.Equal(t, Plain, g.Cell(C(1, 1)).Terrain)
}

func TestGrid_FindUnit(t *testing.T) {
	g := NewGrid(3, 3)
	require.NoError(t, g.Cell(C(1, 2)).AddUnit(DefaultUnitStats().NewUnit(7, Green)))

	at, u, ok := g.FindUnit(7)
	require.True(t, ok)
	assert.Equal(t, C(1, 2), at)
	assert.Equal(t, Green, u.Player)

	_, _, ok = g.FindUnit(8)
	assert.False(t, ok)
	assert.Len(t, g.Units(Green), 1)
	assert.Empty(t, g.Units(Blue))
}
