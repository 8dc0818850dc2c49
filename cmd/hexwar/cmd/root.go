package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/freeeve/grid-getters/internal/config"
	"github.com/freeeve/grid-getters/internal/logger"
	"github.com/freeeve/grid-getters/pkg/hexwar"
)

var (
	boardWidth     int
	boardHeight    int
	reinforcements int
	startingPlayer string
	dieSeed        uint64
	terrainSeed    int64
)

var rootCmd = &cobra.Command{
	Use:   "hexwar",
	Short: "Two-player hex wargame for the terminal",
	Long: `hexwar runs a hot-seat game on a hex board.

Defaults come from the environment (and a .env file if present), the same
variables the API server reads. Flags override them.

Available commands:
  play     Play a game by typing commands
  board    Print the starting board and exit`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&boardWidth, "width", 9, "board width in hexes")
	pf.IntVar(&boardHeight, "height", 6, "board height in rows")
	pf.IntVar(&reinforcements, "reinforcements", 2, "reinforcements per turn")
	pf.StringVar(&startingPlayer, "player", string(hexwar.Blue), "starting player (BLUE or GREEN)")
	pf.Uint64Var(&dieSeed, "seed", 0, "die seed, 0 seeds from the clock")
	pf.Int64Var(&terrainSeed, "terrain-seed", 0, "generate terrain from this seed, 0 keeps the default map")
}

// loadConfig reads the environment and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.InitWriter(cfg.LogLevel, cmd.ErrOrStderr())

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.BoardWidth = boardWidth
	}
	if flags.Changed("height") {
		cfg.BoardHeight = boardHeight
	}
	if flags.Changed("reinforcements") {
		cfg.ReinforcementsPerTurn = reinforcements
	}
	if flags.Changed("player") {
		cfg.StartingPlayer = strings.ToUpper(startingPlayer)
	}
	if flags.Changed("seed") {
		cfg.DieSeed = dieSeed
	}
	if flags.Changed("terrain-seed") {
		cfg.TerrainSeed = terrainSeed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGame(cmd *cobra.Command) (*hexwar.GameState, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	gs, err := hexwar.NewGame(cfg.Setup())
	if err != nil {
		return nil, nil, fmt.Errorf("new game: %w", err)
	}
	return gs, cfg, nil
}
