package hexwar

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dustin/go-humanize"
)

// ErrInvalidSetup is returned by NewGame for unusable board parameters.
var ErrInvalidSetup = errors.New("invalid game setup")

// Setup holds everything needed to start a game.
type Setup struct {
	Width                 int
	Height                int
	Terrain               map[Coord]TerrainType
	Fortifications        map[Coord]FortificationType
	Cities                map[Coord]City
	ReinforcementsPerTurn int
	StartingPlayer        Player
	UnitTemplate          UnitStats

	// TerrainSeed, when non-zero, fills the board with generated terrain
	// before the explicit Terrain overrides are applied.
	TerrainSeed int64
}

// DefaultSetup is the standard two-city board. Features that fall outside a
// width x height board are dropped.
func DefaultSetup(width, height int) Setup {
	s := Setup{
		Width:                 width,
		Height:                height,
		Terrain:               map[Coord]TerrainType{},
		Fortifications:        map[Coord]FortificationType{},
		Cities:                map[Coord]City{},
		ReinforcementsPerTurn: 2,
		StartingPlayer:        Blue,
		UnitTemplate:          DefaultUnitStats(),
	}
	index := NewCoordSet()
	for _, row := range BoardIndex(height, width) {
		for _, c := range row {
			index.Add(c)
		}
	}

	cities := map[Coord]City{
		C(0, 0): {Name: "Miele", Player: Blue},
		C(width-(height+1)/2, height-1): {Name: "Putz", Player: Green},
	}
	terrain := map[Coord]TerrainType{
		C(4, 3): Forest,
		C(5, 3): Forest,
		C(4, 2): Forest,
		C(5, 2): Forest,
		C(3, 4): Forest,
		C(1, 3): Mountain,
	}
	for c, city := range cities {
		if index.Has(c) {
			s.Cities[c] = city
		}
	}
	for c, t := range terrain {
		if index.Has(c) {
			s.Terrain[c] = t
		}
	}
	return s
}

// Validate checks the setup can produce a playable board.
func (s Setup) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidSetup, s.Width, s.Height)
	}
	if !s.StartingPlayer.Valid() {
		return fmt.Errorf("%w: unknown starting player %q", ErrInvalidSetup, s.StartingPlayer)
	}
	if s.ReinforcementsPerTurn < 0 {
		return fmt.Errorf("%w: negative reinforcements per turn", ErrInvalidSetup)
	}
	for c, city := range s.Cities {
		if !city.Player.Valid() {
			return fmt.Errorf("%w: city %q at %s has unknown owner %q", ErrInvalidSetup, city.Name, c, city.Player)
		}
	}
	return nil
}

// NewGame builds the initial state for s.
func NewGame(s Setup) (*GameState, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	g := NewGrid(s.Width, s.Height)

	terrain := map[Coord]TerrainType{}
	if s.TerrainSeed != 0 {
		terrain = GenerateTerrain(g.Coords(), s.TerrainSeed)
		// Cities always sit on open ground.
		for c := range s.Cities {
			terrain[c] = Plain
		}
	}
	maps.Copy(terrain, s.Terrain)
	for c, t := range terrain {
		if !g.SetTerrain(c, t) {
			return nil, fmt.Errorf("%w: terrain at %s is off the board", ErrInvalidSetup, c)
		}
	}
	for c, f := range s.Fortifications {
		if !g.SetFortification(c, f) {
			return nil, fmt.Errorf("%w: fortification at %s is off the board", ErrInvalidSetup, c)
		}
	}
	for c, city := range s.Cities {
		if !g.SetCity(c, city) {
			return nil, fmt.Errorf("%w: city %q at %s is off the board", ErrInvalidSetup, city.Name, c)
		}
	}

	gs := &GameState{
		Phase:                   PhasePlaceReinforcements,
		CurrentPlayer:           s.StartingPlayer,
		RemainingReinforcements: s.ReinforcementsPerTurn,
		Turn:                    1,
		Grid:                    g,
		Rules: Rules{
			ReinforcementsPerTurn: s.ReinforcementsPerTurn,
			UnitTemplate:          s.UnitTemplate,
		},
	}
	gs.log(turnBanner(gs))
	return gs, nil
}

func turnBanner(gs *GameState) string {
	return fmt.Sprintf("%s turn: %s to place %d reinforcements.",
		humanize.Ordinal(gs.Turn), gs.CurrentPlayer, gs.RemainingReinforcements)
}
