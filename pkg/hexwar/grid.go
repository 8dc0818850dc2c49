package hexwar

// BoardIndex returns the coordinates of a height x width board row by row.
// Row r is shifted left by r/2 so the board renders as a rectangle.
func BoardIndex(height, width int) [][]Coord {
	rows := make([][]Coord, 0, height)
	for r := 0; r < height; r++ {
		offset := r / 2
		row := make([]Coord, 0, width)
		for q := -offset; q < width-offset; q++ {
			row = append(row, Coord{Q: q, R: r})
		}
		rows = append(rows, row)
	}
	return rows
}

// Grid is the sparse set of cells making up the board.
type Grid struct {
	width  int
	height int
	rows   [][]Coord
	cells  map[Coord]*Cell
}

// NewGrid creates a board of plain, unfortified, empty cells.
func NewGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		rows:   BoardIndex(height, width),
		cells:  make(map[Coord]*Cell, width*height),
	}
	for _, row := range g.rows {
		for _, c := range row {
			g.cells[c] = newCell(c)
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether a cell exists at c.
func (g *Grid) InBounds(c Coord) bool {
	_, ok := g.cells[c]
	return ok
}

// Cell returns the cell at c, or nil when c is off the board.
func (g *Grid) Cell(c Coord) *Cell {
	return g.cells[c]
}

// Rows returns the board coordinates grouped by row.
func (g *Grid) Rows() [][]Coord {
	out := make([][]Coord, len(g.rows))
	for i, row := range g.rows {
		out[i] = append([]Coord(nil), row...)
	}
	return out
}

// Coords returns every coordinate in row order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for _, row := range g.rows {
		out = append(out, row...)
	}
	return out
}

// Cells returns every cell in row order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, 0, len(g.cells))
	for _, row := range g.rows {
		for _, c := range row {
			out = append(out, g.cells[c])
		}
	}
	return out
}

// FindUnit locates a unit anywhere on the board.
func (g *Grid) FindUnit(id UnitID) (Coord, Unit, bool) {
	for _, cell := range g.cells {
		if u, ok := cell.units[id]; ok {
			return cell.Coord, u, true
		}
	}
	return Coord{}, Unit{}, false
}

// Units returns every unit owned by p, ordered by id.
func (g *Grid) Units(p Player) []Unit {
	var out []Unit
	for _, cell := range g.Cells() {
		for _, u := range cell.Units() {
			if u.Player == p {
				out = append(out, u)
			}
		}
	}
	return out
}

// SetTerrain changes the terrain of an in-bounds cell. Off-board
// coordinates are ignored and reported false.
func (g *Grid) SetTerrain(c Coord, t TerrainType) bool {
	cell := g.cells[c]
	if cell == nil {
		return false
	}
	cell.Terrain = t
	return true
}

// SetFortification changes the fortification of an in-bounds cell.
func (g *Grid) SetFortification(c Coord, f FortificationType) bool {
	cell := g.cells[c]
	if cell == nil {
		return false
	}
	cell.Fortification = f
	return true
}

// SetCity places a city on an in-bounds cell.
func (g *Grid) SetCity(c Coord, city City) bool {
	cell := g.cells[c]
	if cell == nil {
		return false
	}
	cell.City = &city
	return true
}

// ClearHighlights removes legal-move and legal-invasion flags from every cell.
func (g *Grid) ClearHighlights() {
	for _, cell := range g.cells {
		cell.clearHighlights()
	}
}

func (g *Grid) clearMoveIDs() {
	for _, cell := range g.cells {
		cell.moveIDs = nil
	}
}

func (g *Grid) clearInvasionIDs() {
	for _, cell := range g.cells {
		cell.invasionIDs = nil
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	n := &Grid{
		width:  g.width,
		height: g.height,
		rows:   g.rows, // never mutated after construction
		cells:  make(map[Coord]*Cell, len(g.cells)),
	}
	for c, cell := range g.cells {
		n.cells[c] = cell.clone()
	}
	return n
}
