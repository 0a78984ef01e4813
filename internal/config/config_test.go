package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the user and local search paths at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	isolate(t)

	shooter, err := LoadShooter("")
	if err != nil {
		t.Fatalf("LoadShooter() failed: %v", err)
	}
	want := DefaultShooterConfig()
	if shooter.Player.FireRateMS != want.Player.FireRateMS {
		t.Errorf("fire rate = %d, want %d", shooter.Player.FireRateMS, want.Player.FireRateMS)
	}
	if len(shooter.Enemies) != 3 {
		t.Errorf("expected 3 enemy types, got %d", len(shooter.Enemies))
	}
	if shooter.Enemies["bomber"].Score != 500 {
		t.Errorf("bomber score = %d, want 500", shooter.Enemies["bomber"].Score)
	}
	if len(shooter.Waves.Tiers) != 2 || shooter.Waves.Tiers[1].Types[0].Type != "bomber" {
		t.Errorf("unexpected tiers: %+v", shooter.Waves.Tiers)
	}

	td, err := LoadTowerDefense("")
	if err != nil {
		t.Fatalf("LoadTowerDefense() failed: %v", err)
	}
	if len(td.Path) != 8 || td.Path[7].X != 800 {
		t.Errorf("unexpected path: %+v", td.Path)
	}
	if td.Towers[0].Name != "BLASTER" || td.Towers[0].Cost != 50 {
		t.Errorf("unexpected first tower: %+v", td.Towers[0])
	}

	hk, err := LoadHacker("")
	if err != nil {
		t.Fatalf("LoadHacker() failed: %v", err)
	}
	if len(hk.Hardware) != 5 || len(hk.Software) != 4 {
		t.Errorf("shop sizes = %d/%d, want 5/4", len(hk.Hardware), len(hk.Software))
	}
}

func TestEveryEmbeddedDefaultParses(t *testing.T) {
	targets := map[string]any{
		Shooter:      &ShooterConfig{},
		TowerDefense: &TowerDefenseConfig{},
		Runner:       &RunnerConfig{},
		Hacker:       &HackerConfig{},
		Maze:         &MazeConfig{},
	}
	for id, out := range targets {
		data, ok := DefaultYAML(id)
		if !ok || len(data) == 0 {
			t.Errorf("%s: no embedded default", id)
			continue
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			t.Errorf("%s: %v", id, err)
		}
	}
	if _, ok := DefaultYAML("pong"); ok {
		t.Error("unknown game should have no default")
	}
}

func TestCustomPathYAMLOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "runner.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 1.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %v, want 1.2", cfg.Physics.Gravity)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.JumpImpulse != 15 {
		t.Errorf("jump impulse = %v, want 15", cfg.Physics.JumpImpulse)
	}
}

func TestCustomPathTOML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "maze.toml")
	body := "width = 6\nheight = 4\n\n[scores]\nescape = 900\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMaze(path)
	if err != nil {
		t.Fatalf("LoadMaze() failed: %v", err)
	}
	if cfg.Width != 6 || cfg.Height != 4 {
		t.Errorf("size = %dx%d, want 6x4", cfg.Width, cfg.Height)
	}
	if cfg.Scores.Escape != 900 {
		t.Errorf("escape score = %d, want 900", cfg.Scores.Escape)
	}
	if cfg.Attempts != 3 {
		t.Errorf("attempts = %d, want default 3", cfg.Attempts)
	}
}

func TestLocalConfigDirIsSearched(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "hacker.yaml"), []byte("click_power: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHacker("")
	if err != nil {
		t.Fatalf("LoadHacker() failed: %v", err)
	}
	if cfg.ClickPower != 7 {
		t.Errorf("click power = %d, want 7", cfg.ClickPower)
	}
}

func TestCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadShooter(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadShooter(bad)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("parse failure should return defaults, got speed %v", cfg.Player.Speed)
	}
}

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1, HealthMultiplier: 0.5, GapReduction: 50},
	}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tt := range tests {
		if got := dm.Level(tt.score, 0); got < tt.want-1e-9 || got > tt.want+1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}

	if got := dm.Speed(5, 100, 0); got != 10 {
		t.Errorf("Speed at max = %v, want 10", got)
	}
	if got := dm.Health(80, 100, 0); got != 120 {
		t.Errorf("Health at max = %v, want 120", got)
	}
	if got := dm.Gap(250, 220, 100, 0); got != 220 {
		t.Errorf("Gap should floor at 220, got %v", got)
	}
}

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{InitialLevel: 0.7, Progression: ProgressionConfig{Type: "score", MaxAt: 10}})
	if dm.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := dm.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level = %v, want 0.7", got)
	}
}

func TestPresets(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should be empty")
	}

	cfg := DefaultShooterConfig()
	ApplyShooterPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
	if cfg.Player.MaxHealth != 75 {
		t.Errorf("max health = %v, want 75", cfg.Player.MaxHealth)
	}

	runner := DefaultRunnerConfig()
	ApplyRunnerPreset(&runner, DifficultyFixed)
	if runner.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	maze := DefaultMazeConfig()
	ApplyMazePreset(&maze, "")
	if maze.Attempts != 3 {
		t.Error("empty preset must not change config")
	}
}
