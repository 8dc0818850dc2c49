package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

func newTestGame(t *testing.T) *hexwar.GameState {
	t.Helper()
	gs, err := hexwar.NewGame(hexwar.DefaultSetup(9, 6))
	require.NoError(t, err)
	return gs
}

func play(t *testing.T, script string) string {
	t.Helper()
	var out bytes.Buffer
	err := runPlay(strings.NewReader(script), &out, newTestGame(t), hexwar.FixedDie(3))
	require.NoError(t, err)
	return out.String()
}

func TestPlayPlacement(t *testing.T) {
	out := play(t, "place 0 0\nplace 0 0\nplace 0 0\nnext\nquit\n")

	assert.Contains(t, out, "1st turn: BLUE to place 2 reinforcements.")
	assert.Equal(t, 2, strings.Count(out, "BLUE placed a soldier at [0, 0]"))
	assert.Contains(t, out, "rejected: "+hexwar.ErrNoReinforcements.Error())
	assert.Contains(t, out, "BLUE ended placing reinforcements, moving on to the movement phase.")
	assert.Contains(t, out, string(hexwar.PhaseMovementSelectingCell))
}

func TestPlayMove(t *testing.T) {
	out := play(t, strings.Join([]string{
		"place 0 0",
		"next",
		"cell 0 0",
		"unit 1",
		"cell 1 0",
		"orders",
		"next",
	}, "\n")+"\n")

	assert.Contains(t, out, "move #1 from [0, 0] to [1, 0]")
	assert.Contains(t, out, "BLUE moved to [1, 0]")
	assert.Contains(t, out, "BLUE is entering the combat phase.")
}

func TestPlayInspectShowsDistance(t *testing.T) {
	out := play(t, "place 0 0\nnext\ncell 3 0\nquit\n")

	assert.Contains(t, out, "inspected [3, 0]: PLAIN, 3 from nearest BLUE soldier")
}

func TestNearestUnit(t *testing.T) {
	gs := newTestGame(t)
	_, ok := nearestUnit(gs.Grid, hexwar.Blue, hexwar.C(2, 0))
	assert.False(t, ok)

	gs, _, err := hexwar.PlaceReinforcement(gs, hexwar.C(0, 0))
	require.NoError(t, err)
	d, ok := nearestUnit(gs.Grid, hexwar.Blue, hexwar.C(2, 2))
	require.True(t, ok)
	assert.Equal(t, hexwar.Distance(hexwar.C(0, 0), hexwar.C(2, 2)), d)
	assert.Equal(t, 4, d)
}

func TestPlayBadInput(t *testing.T) {
	out := play(t, "dance\nplace 1\nplace a b\nunit x\ncell 40 40\nunit 1\nhelp\n")

	assert.Contains(t, out, `unknown command "dance"`)
	assert.Contains(t, out, "usage: place Q R")
	assert.Contains(t, out, "bad coordinate a b")
	assert.Contains(t, out, `bad unit id "x"`)
	assert.Contains(t, out, "rejected: "+hexwar.ErrOutOfBounds.Error())
	assert.Contains(t, out, "rejected: "+hexwar.ErrWrongPhase.Error())
	assert.Contains(t, out, "commands:")
}

func TestPlayEndOfInput(t *testing.T) {
	out := play(t, "log 1\n")
	assert.Contains(t, out, "1st turn: BLUE to place 2 reinforcements.")
}

func TestCellToken(t *testing.T) {
	gs := newTestGame(t)
	gs, _, err := hexwar.PlaceReinforcement(gs, hexwar.C(0, 0))
	require.NoError(t, err)

	snap := gs.Snapshot()
	assert.Equal(t, ".*B1 ", cellToken(snap.Rows[0][0]))
	assert.Equal(t, ".    ", cellToken(snap.Rows[0][1]))
}

func TestBoardCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"board", "--width", "5", "--height", "3"})
	t.Cleanup(resetRootCmd)

	require.NoError(t, rootCmd.Execute())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], " 0 |"))
	assert.True(t, strings.HasPrefix(lines[1], " 1    |"))
	assert.Equal(t, 5, strings.Count(lines[2], "|")-1)
	assert.Contains(t, out.String(), "terrain . plain")
}

// resetRootCmd undoes flag values and Changed marks left by an Execute.
func resetRootCmd() {
	rootCmd.SetArgs(nil)
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestBoardCommandRejectsOutOfRangeFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"board too wide", []string{"board", "--width", "200"}},
		{"negative reinforcements", []string{"board", "--reinforcements", "-1"}},
		{"unknown player", []string{"board", "--player", "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)
			t.Cleanup(resetRootCmd)

			err := rootCmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
			assert.Empty(t, out.String())
		})
	}
}
