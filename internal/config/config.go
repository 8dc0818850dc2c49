package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/freeeve/grid-getters/pkg/hexwar"
)

// Config holds application configuration loaded from the environment and an
// optional .env file.
type Config struct {
	Port                  string   `validate:"required,numeric"`
	LogLevel              string   `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	BoardWidth            int      `validate:"min=2,max=64"`
	BoardHeight           int      `validate:"min=2,max=64"`
	ReinforcementsPerTurn int      `validate:"min=0,max=20"`
	StartingPlayer        string   `validate:"oneof=BLUE GREEN"`
	DieSeed               uint64   // 0 seeds from the clock
	TerrainSeed           int64    // 0 keeps the fixed default board
	AllowedOrigins        []string `validate:"min=1,dive,required"`
}

// Load reads a .env file when present, then environment variables with
// sensible defaults, and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:           envOrDefault("PORT", "8009"),
		LogLevel:       strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		StartingPlayer: strings.ToUpper(envOrDefault("STARTING_PLAYER", string(hexwar.Blue))),
		AllowedOrigins: splitList(envOrDefault("ALLOWED_ORIGINS", "*")),
	}

	var err error
	if cfg.BoardWidth, err = intEnv("BOARD_WIDTH", 9); err != nil {
		return nil, err
	}
	if cfg.BoardHeight, err = intEnv("BOARD_HEIGHT", 6); err != nil {
		return nil, err
	}
	if cfg.ReinforcementsPerTurn, err = intEnv("REINFORCEMENTS_PER_TURN", 2); err != nil {
		return nil, err
	}
	if cfg.DieSeed, err = strconv.ParseUint(envOrDefault("DIE_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("DIE_SEED: %w", err)
	}
	if cfg.TerrainSeed, err = strconv.ParseInt(envOrDefault("TERRAIN_SEED", "0"), 10, 64); err != nil {
		return nil, fmt.Errorf("TERRAIN_SEED: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags. Callers that override fields after Load
// must call it again.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Setup builds the board parameters for a new game.
func (c *Config) Setup() hexwar.Setup {
	s := hexwar.DefaultSetup(c.BoardWidth, c.BoardHeight)
	s.ReinforcementsPerTurn = c.ReinforcementsPerTurn
	s.StartingPlayer = hexwar.Player(c.StartingPlayer)
	if c.TerrainSeed != 0 {
		s.Terrain = nil
		s.TerrainSeed = c.TerrainSeed
	}
	return s
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v, err := strconv.Atoi(envOrDefault(key, strconv.Itoa(fallback)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
