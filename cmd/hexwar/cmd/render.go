package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

// cellToken is five columns wide: terrain, site, owner, count, highlight.
func cellToken(v hexwar.CellView) string {
	var b strings.Builder
	b.WriteString(v.Terrain.Letter())

	switch {
	case v.City != nil:
		b.WriteByte('*')
	case v.Fortification == hexwar.Fortress:
		b.WriteByte('#')
	case v.Fortification == hexwar.Trenches:
		b.WriteByte('=')
	default:
		b.WriteByte(' ')
	}

	switch n := len(v.Units); {
	case n == 0:
		b.WriteString("  ")
	case n > 9:
		b.WriteString(string(v.Player)[:1] + "+")
	default:
		fmt.Fprintf(&b, "%s%d", string(v.Player)[:1], n)
	}

	switch {
	case v.LegalMove:
		b.WriteByte('m')
	case v.LegalInvasion:
		b.WriteByte('x')
	case len(v.MoveIDs) > 0 || len(v.InvasionIDs) > 0:
		b.WriteByte('o')
	default:
		b.WriteByte(' ')
	}
	return b.String()
}

// renderBoard draws the board with odd rows shifted half a hex right.
func renderBoard(w io.Writer, gs *hexwar.GameState) {
	snap := gs.Snapshot()
	for r, row := range snap.Rows {
		var b strings.Builder
		fmt.Fprintf(&b, "%2d ", r)
		if r%2 == 1 {
			b.WriteString("   ")
		}
		for _, v := range row {
			b.WriteString("|")
			b.WriteString(cellToken(v))
		}
		b.WriteString("|")
		fmt.Fprintln(w, b.String())
	}
}

func renderLegend(w io.Writer) {
	fmt.Fprintln(w, "terrain . plain  F forest  M mountain   site * city  = trenches  # fortress")
	fmt.Fprintln(w, "units B/G + count   m legal move  x legal attack  o has orders")
	fmt.Fprintln(w, "row r starts at q = -r/2")
}

// renderStatus prints whose turn it is and what they are doing.
func renderStatus(w io.Writer, gs *hexwar.GameState) {
	fmt.Fprintf(w, "%s turn, %s, %s", humanize.Ordinal(gs.Turn), gs.CurrentPlayer, gs.Phase)
	if gs.Phase == hexwar.PhasePlaceReinforcements {
		fmt.Fprintf(w, ", %d to place", gs.RemainingReinforcements)
	}
	fmt.Fprintln(w)
	renderInspected(w, gs)

	sel := gs.Selection
	if sel.Source == nil {
		return
	}
	cell := gs.Grid.Cell(*sel.Source)
	fmt.Fprintf(w, "selected %s:", *sel.Source)
	for _, u := range cell.Units() {
		mark := ""
		switch {
		case sel.Unit != nil && *sel.Unit == u.ID:
			mark = "*"
		case gs.Phase.IsMovement() && u.HasMovedThisTurn:
			mark = " (moved)"
		case gs.Phase.IsCombat() && u.HasAttackedThisTurn:
			mark = " (attacked)"
		}
		fmt.Fprintf(w, " #%d%s", u.ID, mark)
	}
	fmt.Fprintln(w)
}

// renderInspected describes a clicked cell the current player does not hold.
func renderInspected(w io.Writer, gs *hexwar.GameState) {
	at := gs.Selection.Inspected
	if at == nil {
		return
	}
	cell := gs.Grid.Cell(*at)
	if cell == nil || cell.HeldBy(gs.CurrentPlayer) {
		return
	}
	fmt.Fprintf(w, "inspected %s: %s", *at, cell.Terrain)
	if owner, ok := cell.Player(); ok {
		fmt.Fprintf(w, ", %d %s, defence %s", cell.Len(), owner, cell.Defence())
	}
	if d, ok := nearestUnit(gs.Grid, gs.CurrentPlayer, *at); ok {
		fmt.Fprintf(w, ", %d from nearest %s soldier", d, gs.CurrentPlayer)
	}
	fmt.Fprintln(w)
}

// nearestUnit is the hex distance from c to the closest cell p holds.
func nearestUnit(g *hexwar.Grid, p hexwar.Player, c hexwar.Coord) (int, bool) {
	best, found := 0, false
	for _, cell := range g.Cells() {
		if !cell.HeldBy(p) {
			continue
		}
		if d := hexwar.Distance(c, cell.Coord); !found || d < best {
			best, found = d, true
		}
	}
	return best, found
}

func renderOrders(w io.Writer, gs *hexwar.GameState) {
	snap := gs.Snapshot()
	if len(snap.Moves) == 0 && len(snap.Invasions) == 0 {
		fmt.Fprintln(w, "no orders")
		return
	}
	for _, m := range snap.Moves {
		fmt.Fprintf(w, "move %s\n", m.Description)
	}
	for _, inv := range snap.Invasions {
		fmt.Fprintf(w, "attack %s\n", inv.Description)
	}
}

func renderCombat(w io.Writer, rep hexwar.CombatReport) {
	fmt.Fprintf(w, "  %s vs %s at %s: %s against %s, odds %d, die %d, roll %d, %s\n",
		rep.Attacker, rep.Defender, rep.Target, rep.Attack, rep.Defence,
		rep.Odds, rep.DieRoll, rep.FinalRoll, rep.Outcome)
}
