package config

import (
	"errors"
	"lcr/game"
	"lcr/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	want := File{
		Simulations:  1000,
		Players:      3,
		Dice:         3,
		Coins:        3,
		KeepWeight:   3,
		CenterWeight: 1,
		LeftWeight:   1,
		RightWeight:  1,
	}

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "config.json", `{
			"simulations": 1000, "players": 3, "dice": 3, "coins": 3,
			"keep_weight": 3, "center_weight": 1, "left_weight": 1, "right_weight": 1
		}`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("yaml", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
simulations: 1000
players: 3
dice: 3
coins: 3
keep_weight: 3
center_weight: 1
left_weight: 1
right_weight: 1
`)

		got, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.json"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeFile(t, "config.json", `{"players": "three"}`))

		require.Error(t, err)
	})
}

func TestFileGameConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		f := File{Simulations: 10, Players: 2, Dice: 1, Coins: 1, RightWeight: 1}

		cfg, err := f.GameConfig()

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Players())
		require.Equal(t, game.Weights{Right: 1}, cfg.Weights())
		require.NoError(t, f.Validate())
	})

	t.Run("no simulations", func(t *testing.T) {
		f := File{Players: 2, Dice: 1, Coins: 1, RightWeight: 1}

		err := f.Validate()

		require.True(t, errors.Is(err, game.ErrInvalidConfig))
		require.ErrorContains(t, err, "simulations")
	})

	t.Run("invalid game", func(t *testing.T) {
		f := File{Simulations: 10, Players: 1, Dice: 1, Coins: 1}

		_, err := f.GameConfig()

		require.True(t, errors.Is(err, game.ErrInvalidConfig))
		require.ErrorContains(t, err, "players")
		require.ErrorContains(t, err, "weights")
	})
}

func TestLoadRuntime(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := LoadRuntime()

		require.NoError(t, err)
		require.Equal(t, Runtime{Workers: meta.WORKERS, MaxTurns: meta.MAX_TURNS, LogLevel: "info"}, r)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("LCR_WORKERS", "4")
		t.Setenv("LCR_SEED", "123")
		t.Setenv("LCR_MAX_TURNS", "500")
		t.Setenv("LCR_LOG_LEVEL", "debug")
		t.Setenv("LCR_OUT_DIR", "results")

		r, err := LoadRuntime()

		require.NoError(t, err)
		require.Equal(t, Runtime{Workers: 4, Seed: 123, MaxTurns: 500, LogLevel: "debug", OutDir: "results"}, r)
		level, err := r.Level()
		require.NoError(t, err)
		require.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, value := range map[string]string{
			"LCR_WORKERS":   "0",
			"LCR_MAX_TURNS": "-1",
			"LCR_SEED":      "not-a-number",
			"LCR_LOG_LEVEL": "loud",
		} {
			t.Run(name, func(t *testing.T) {
				t.Setenv(name, value)

				_, err := LoadRuntime()

				require.Error(t, err)
			})
		}
	})
}
