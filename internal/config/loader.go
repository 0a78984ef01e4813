package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Game IDs with a configuration file.
const (
	Shooter      = "shooter"
	TowerDefense = "towerdefense"
	Runner       = "runner"
	Hacker       = "hacker"
	Maze         = "maze"
)

// decode parses data by file extension: .toml goes through BurntSushi/toml,
// everything else through yaml.v3.
func decode(path string, data []byte, out any) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

// load resolves a game's config.
// Search order: customPath -> ~/.arcade/configs/<id>.{yaml,toml} -> ./configs/<id>.{yaml,toml}
// -> embedded default -> hard-coded default.
// Only an explicit customPath can fail; every other source falls through silently.
func load[T any](id, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := decode(customPath, data, &cfg); err != nil {
			return fallback(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(id) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := fallback()
		if err := decode(path, data, &candidate); err == nil {
			return candidate, nil
		}
	}

	if data, ok := embedded[id]; ok {
		candidate := fallback()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}
	return cfg, nil
}

// searchPaths lists the user and local config candidates for a game.
func searchPaths(id string) []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, id+".yaml"), filepath.Join(dir, id+".toml"))
	}
	return append(paths, filepath.Join("configs", id+".yaml"), filepath.Join("configs", id+".toml"))
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}

// DefaultYAML returns the embedded default config for a game.
func DefaultYAML(id string) ([]byte, bool) {
	data, ok := embedded[id]
	return data, ok
}

// LoadShooter loads Neon Fury configuration.
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load(Shooter, customPath, DefaultShooterConfig)
}

// LoadTowerDefense loads Neon Defense configuration.
func LoadTowerDefense(customPath string) (TowerDefenseConfig, error) {
	return load(TowerDefense, customPath, DefaultTowerDefenseConfig)
}

// LoadRunner loads Neon Runner configuration.
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load(Runner, customPath, DefaultRunnerConfig)
}

// LoadHacker loads Hacker Tycoon configuration.
func LoadHacker(customPath string) (HackerConfig, error) {
	return load(Hacker, customPath, DefaultHackerConfig)
}

// LoadMaze loads Data Vault configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return load(Maze, customPath, DefaultMazeConfig)
}

// ApplyShooterPreset tunes player durability and progression for a preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth = 150
		cfg.PowerUps.Chance = 0.25
	case DifficultyHard:
		cfg.Player.MaxHealth = 75
		cfg.PowerUps.Chance = 0.1
	}
}

// ApplyTowerDefensePreset tunes the economy for a preset.
func ApplyTowerDefensePreset(cfg *TowerDefenseConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	switch preset {
	case DifficultyEasy:
		cfg.StartMoney = 250
		cfg.Lives = 30
	case DifficultyHard:
		cfg.StartMoney = 125
		cfg.Lives = 10
	}
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
}

// ApplyHackerPreset modifies the config based on a difficulty preset.
func ApplyHackerPreset(cfg *HackerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	if preset == DifficultyEasy {
		cfg.ClickPower = 2
	}
}

// ApplyMazePreset tunes traps and door attempts for a preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Apply(preset)
	switch preset {
	case DifficultyEasy:
		cfg.TrapDamage = 15
		cfg.Attempts = 5
	case DifficultyHard:
		cfg.TrapDamage = 35
		cfg.Attempts = 2
		cfg.Odds.Trap = 0.15
	}
}
