package hexwar

import "slices"

// CellView is the read-only rendering of one cell.
type CellView struct {
	Coord         Coord             `json:"coord"`
	Terrain       TerrainType       `json:"terrain"`
	Fortification FortificationType `json:"fortification"`
	City          *City             `json:"city,omitempty"`
	Player        Player            `json:"player,omitempty"`
	Units         []Unit            `json:"units"`
	Attack        Strength          `json:"attack"`
	Defence       Strength          `json:"defence"`
	LegalMove     bool              `json:"legal_move"`
	LegalInvasion bool              `json:"legal_invasion"`
	MoveIDs       []MoveID          `json:"move_ids,omitempty"`
	InvasionIDs   []InvasionID      `json:"invasion_ids,omitempty"`
}

// OrderView lists a pending move or invasion.
type OrderView struct {
	ID          int      `json:"id"`
	Target      Coord    `json:"target"`
	Sources     []Coord  `json:"sources"`
	Units       []UnitID `json:"units"`
	Description string   `json:"description"`
}

// Snapshot is everything a renderer needs to draw the game.
type Snapshot struct {
	Phase                   Phase          `json:"phase"`
	CurrentPlayer           Player         `json:"current_player"`
	RemainingReinforcements int            `json:"remaining_reinforcements"`
	Turn                    int            `json:"turn"`
	Width                   int            `json:"width"`
	Height                  int            `json:"height"`
	Rows                    [][]CellView   `json:"rows"`
	LegalMoves              []Coord        `json:"legal_moves"`
	LegalTargets            []Coord        `json:"legal_targets"`
	Moves                   []OrderView    `json:"moves"`
	Invasions               []OrderView    `json:"invasions"`
	Selection               Selection      `json:"selection"`
	Inspected               *CellView      `json:"inspected,omitempty"`
	Combats                 []CombatReport `json:"combats,omitempty"`
	Log                     []string       `json:"log"`
}

// View renders a single cell.
func (c *Cell) View() CellView {
	v := CellView{
		Coord:         c.Coord,
		Terrain:       c.Terrain,
		Fortification: c.Fortification,
		Units:         c.Units(),
		Attack:        c.Attack(),
		Defence:       c.Defence(),
		LegalMove:     c.LegalMove,
		LegalInvasion: c.LegalInvasion,
		MoveIDs:       c.MoveIDs(),
		InvasionIDs:   c.InvasionIDs(),
	}
	if c.City != nil {
		city := *c.City
		v.City = &city
	}
	if p, ok := c.Player(); ok {
		v.Player = p
	}
	return v
}

func orderView(id int, target Coord, orders []Order, desc string) OrderView {
	v := OrderView{ID: id, Target: target, Sources: Sources(orders), Description: desc}
	for _, o := range orders {
		v.Units = append(v.Units, o.UnitID)
	}
	return v
}

// Snapshot builds the read-only view of gs.
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Phase:                   gs.Phase,
		CurrentPlayer:           gs.CurrentPlayer,
		RemainingReinforcements: gs.RemainingReinforcements,
		Turn:                    gs.Turn,
		Width:                   gs.Grid.Width(),
		Height:                  gs.Grid.Height(),
		LegalMoves:              []Coord{},
		LegalTargets:            []Coord{},
		Moves:                   []OrderView{},
		Invasions:               []OrderView{},
		Selection:               gs.Selection.clone(),
		Combats:                 slices.Clone(gs.Combats),
		Log:                     slices.Clone(gs.Log),
	}
	for _, row := range gs.Grid.Rows() {
		views := make([]CellView, 0, len(row))
		for _, c := range row {
			cell := gs.Grid.Cell(c)
			views = append(views, cell.View())
			if cell.LegalMove {
				s.LegalMoves = append(s.LegalMoves, c)
			}
			if cell.LegalInvasion {
				s.LegalTargets = append(s.LegalTargets, c)
			}
		}
		s.Rows = append(s.Rows, views)
	}
	for _, m := range gs.Orders.Moves {
		s.Moves = append(s.Moves, orderView(int(m.ID), m.Target, m.Orders, m.Describe()))
	}
	for _, inv := range gs.Orders.Invasions {
		s.Invasions = append(s.Invasions, orderView(int(inv.ID), inv.Target, inv.Orders, inv.Describe()))
	}
	if gs.Selection.Inspected != nil {
		if cell := gs.Grid.Cell(*gs.Selection.Inspected); cell != nil {
			v := cell.View()
			s.Inspected = &v
		}
	}
	return s
}
