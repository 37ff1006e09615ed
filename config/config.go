package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"lcr/game"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the experiment description read from disk.
type File struct {
	Simulations  int     `json:"simulations" yaml:"simulations"`
	Players      int     `json:"players" yaml:"players"`
	Dice         int     `json:"dice" yaml:"dice"`
	Coins        int     `json:"coins" yaml:"coins"`
	KeepWeight   float64 `json:"keep_weight" yaml:"keep_weight"`
	CenterWeight float64 `json:"center_weight" yaml:"center_weight"`
	LeftWeight   float64 `json:"left_weight" yaml:"left_weight"`
	RightWeight  float64 `json:"right_weight" yaml:"right_weight"`
}

// Load reads a JSON or, for .yaml and .yml files, YAML configuration.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &f)
	default:
		err = json.Unmarshal(data, &f)
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return f, nil
}

func (f File) Weights() game.Weights {
	return game.Weights{
		Keep:   f.KeepWeight,
		Center: f.CenterWeight,
		Left:   f.LeftWeight,
		Right:  f.RightWeight,
	}
}

// GameConfig validates the file and builds the game setup from it.
func (f File) GameConfig() (game.Config, error) {
	cfg, err := game.NewConfig(f.Players, f.Dice, f.Coins, f.Weights())
	if f.Simulations < 1 {
		err = errors.Join(err, fmt.Errorf("%w: simulations must be at least 1, got %d", game.ErrInvalidConfig, f.Simulations))
	}
	if err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

func (f File) Validate() error {
	_, err := f.GameConfig()
	return err
}
