package hexwar

import "fmt"

// Coord is an axial hex coordinate. The third cube component is derived.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// C is shorthand for Coord{Q: q, R: r}.
func C(q, r int) Coord {
	return Coord{Q: q, R: r}
}

// S returns the derived cube component so that Q+R+S == 0.
func (c Coord) S() int {
	return -c.Q - c.R
}

// neighborOffsets lists the six axial directions in the fixed neighbor order.
var neighborOffsets = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates. The order is stable.
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range neighborOffsets {
		out[i] = Coord{Q: c.Q + d.Q, R: c.R + d.R}
	}
	return out
}

// Distance returns the hex step distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return (dq + dr + ds) / 2
}

func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.Q, c.R)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
