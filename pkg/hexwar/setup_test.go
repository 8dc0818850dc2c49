package hexwar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSetup_Board(t *testing.T) {
	gs, err := NewGame(DefaultSetup(9, 6))
	require.NoError(t, err)

	assert.Equal(t, PhasePlaceReinforcements, gs.Phase)
	assert.Equal(t, Blue, gs.CurrentPlayer)
	assert.Equal(t, 2, gs.RemainingReinforcements)
	assert.Equal(t, 1, gs.Turn)
	assert.Equal(t, []string{"1st turn: BLUE to place 2 reinforcements."}, gs.Log)

	miele := gs.Grid.Cell(C(0, 0)).City
	require.NotNil(t, miele)
	assert.Equal(t, City{Name: "Miele", Player: Blue}, *miele)

	putz := gs.Grid.Cell(C(6, 5)).City
	require.NotNil(t, putz)
	assert.Equal(t, City{Name: "Putz", Player: Green}, *putz)

	for _, c := range []Coord{C(4, 3), C(5, 3), C(4, 2), C(5, 2), C(3, 4)} {
		assert.Equal(t, Forest, gs.Grid.Cell(c).Terrain, "%s", c)
	}
	assert.Equal(t, Mountain, gs.Grid.Cell(C(1, 3)).Terrain)
	assert.Equal(t, Plain, gs.Grid.Cell(C(2, 2)).Terrain)
}

func TestDefaultSetup_SmallBoardDropsOffBoardFeatures(t *testing.T) {
	s := DefaultSetup(3, 2)
	assert.Empty(t, s.Terrain)
	assert.Len(t, s.Cities, 2)
	assert.Equal(t, "Putz", s.Cities[C(2, 1)].Name)

	_, err := NewGame(s)
	require.NoError(t, err)
}

func TestNewGame_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Setup)
	}{
		{"zero width", func(s *Setup) { s.Width = 0 }},
		{"bad player", func(s *Setup) { s.StartingPlayer = "RED" }},
		{"negative reinforcements", func(s *Setup) { s.ReinforcementsPerTurn = -1 }},
		{"city off board", func(s *Setup) { s.Cities[C(40, 40)] = City{Name: "X", Player: Blue} }},
		{"terrain off board", func(s *Setup) { s.Terrain[C(-9, 0)] = Forest }},
		{"city owner", func(s *Setup) { s.Cities[C(1, 1)] = City{Name: "Y"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSetup(9, 6)
			tt.mutate(&s)
			_, err := NewGame(s)
			require.ErrorIs(t, err, ErrInvalidSetup)
		})
	}
}

func TestNewGame_GeneratedTerrain(t *testing.T) {
	s := DefaultSetup(9, 6)
	s.Terrain = nil
	s.TerrainSeed = 42

	a, err := NewGame(s)
	require.NoError(t, err)
	b, err := NewGame(s)
	require.NoError(t, err)

	for _, c := range a.Grid.Coords() {
		assert.Equal(t, a.Grid.Cell(c).Terrain, b.Grid.Cell(c).Terrain, "%s", c)
	}
	assert.Equal(t, Plain, a.Grid.Cell(C(0, 0)).Terrain)
	assert.Equal(t, Plain, a.Grid.Cell(C(6, 5)).Terrain)
}

func TestGenerateTerrain_CoversEveryCoord(t *testing.T) {
	coords := NewGrid(12, 8).Coords()
	got := GenerateTerrain(coords, 7)
	assert.Len(t, got, len(coords))
	assert.Equal(t, got, GenerateTerrain(coords, 7))
}
