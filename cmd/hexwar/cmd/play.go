package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

const playHelp = `commands:
  place Q R     place a reinforcement
  cell Q R      click a cell (select, target, or cancel)
  unit ID       pick a soldier in the selected cell
  next          end the current phase
  show          draw the board
  orders        list pending moves and attacks
  log [N]       print the last N log lines (default 10)
  help          this text
  quit          leave the game`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a hot-seat game in the terminal",
	Long: `Start a new game and read commands from standard input.

Both players share the terminal and take turns.

` + playHelp,
	RunE: func(cmd *cobra.Command, args []string) error {
		gs, cfg, err := newGame(cmd)
		if err != nil {
			return err
		}
		return runPlay(cmd.InOrStdin(), cmd.OutOrStdout(), gs, hexwar.NewRandDie(cfg.DieSeed))
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

type game struct {
	gs  *hexwar.GameState
	die hexwar.Die
	out io.Writer
}

// runPlay drives gs from the lines read on in until quit or end of input.
func runPlay(in io.Reader, out io.Writer, gs *hexwar.GameState, die hexwar.Die) error {
	s := &game{gs: gs, die: die, out: out}
	for _, line := range gs.Log {
		fmt.Fprintln(out, line)
	}
	s.show()

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		if done := s.exec(strings.Fields(sc.Text())); done {
			return nil
		}
	}
}

func (s *game) exec(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch strings.ToLower(args[0]) {
	case "place", "p":
		if c, ok := s.coordArgs(args); ok {
			s.apply(hexwar.Command{Kind: hexwar.CmdPlaceReinforcement, Coord: c})
		}
	case "cell", "c", "select":
		if c, ok := s.coordArgs(args); ok {
			s.apply(hexwar.Command{Kind: hexwar.CmdSelectCell, Coord: c})
		}
	case "unit", "u":
		if len(args) != 2 {
			fmt.Fprintln(s.out, "usage: unit ID")
			return false
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(s.out, "bad unit id %q\n", args[1])
			return false
		}
		s.apply(hexwar.Command{Kind: hexwar.CmdSelectUnit, UnitID: hexwar.UnitID(id)})
	case "next", "n", "end":
		s.apply(hexwar.Command{Kind: hexwar.CmdAdvancePhase})
	case "show", "board":
		s.show()
	case "orders":
		renderOrders(s.out, s.gs)
	case "log":
		n := 10
		if len(args) > 1 {
			if v, err := strconv.Atoi(args[1]); err == nil && v > 0 {
				n = v
			}
		}
		for _, line := range s.gs.Log[max(0, len(s.gs.Log)-n):] {
			fmt.Fprintln(s.out, line)
		}
	case "help", "?":
		fmt.Fprintln(s.out, playHelp)
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, try help\n", args[0])
	}
	return false
}

func (s *game) coordArgs(args []string) (hexwar.Coord, bool) {
	if len(args) != 3 {
		fmt.Fprintf(s.out, "usage: %s Q R\n", args[0])
		return hexwar.Coord{}, false
	}
	q, errQ := strconv.Atoi(args[1])
	r, errR := strconv.Atoi(args[2])
	if errQ != nil || errR != nil {
		fmt.Fprintf(s.out, "bad coordinate %s %s\n", args[1], args[2])
		return hexwar.Coord{}, false
	}
	return hexwar.C(q, r), true
}

func (s *game) apply(cmd hexwar.Command) {
	next, lines, err := applySafely(s.gs, cmd, s.die)
	var rej *hexwar.RejectionError
	switch {
	case errors.As(err, &rej):
		fmt.Fprintf(s.out, "rejected: %v\n", rej.Err)
		return
	case err != nil:
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	resolved := s.gs.Phase == hexwar.PhaseCombatSelectingCell && cmd.Kind == hexwar.CmdAdvancePhase
	s.gs = next
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
	if resolved {
		for _, rep := range next.Combats {
			renderCombat(s.out, rep)
		}
	}
	if cmd.Kind == hexwar.CmdAdvancePhase {
		s.show()
		return
	}
	renderStatus(s.out, s.gs)
}

// applySafely keeps the game alive when the engine trips an invariant.
func applySafely(gs *hexwar.GameState, cmd hexwar.Command, die hexwar.Die) (next *hexwar.GameState, lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			ie, ok := r.(*hexwar.InvariantError)
			if !ok {
				panic(r)
			}
			next, lines, err = gs, nil, ie
		}
	}()
	return hexwar.Apply(gs, cmd, die)
}

func (s *game) show() {
	renderBoard(s.out, s.gs)
	renderStatus(s.out, s.gs)
}
