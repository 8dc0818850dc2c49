package hexwar

import "slices"

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coord]struct{}

// NewCoordSet builds a set from the given coordinates.
func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members ordered by row then column.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.SortFunc(out, compareCoords)
	return out
}

func compareCoords(a, b Coord) int {
	if a.R != b.R {
		return a.R - b.R
	}
	return a.Q - b.Q
}

type reachState struct {
	at     Coord
	budget int
}

// Reachable returns every coordinate where a walk from `from` spends its
// budget exactly. Entering a cell costs that cell's terrain movement cost.
// A negative budget reaches nothing and a zero budget reaches only `from`.
//
// Walks are explored depth-first with a visited set keyed by (cell, budget
// left), so each state expands once no matter how many paths lead to it.
func Reachable(g *Grid, from Coord, budget int) CoordSet {
	out := CoordSet{}
	if budget < 0 {
		return out
	}
	seen := make(map[reachState]struct{})
	stack := []reachState{{at: from, budget: budget}}
	for len(stack) > 0 {
		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[st]; ok {
			continue
		}
		seen[st] = struct{}{}
		if st.budget == 0 {
			out.Add(st.at)
			continue
		}
		for _, n := range st.at.Neighbors() {
			cell := g.Cell(n)
			if cell == nil {
				continue
			}
			left := st.budget - cell.Terrain.MovementCost()
			if left < 0 {
				continue
			}
			stack = append(stack, reachState{at: n, budget: left})
		}
	}
	return out
}
