package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/towerdefense.yaml
var defaultTowerDefenseYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/hacker.yaml
var defaultHackerYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

var embedded = map[string][]byte{
	Shooter:      defaultShooterYAML,
	TowerDefense: defaultTowerDefenseYAML,
	Runner:       defaultRunnerYAML,
	Hacker:       defaultHackerYAML,
	Maze:         defaultMazeYAML,
}

// DefaultShooterConfig returns the default Neon Fury configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldSize{Width: 800, Height: 600},
		Player: ShooterPlayer{
			Speed:           7,
			Size:            50,
			FireRateMS:      150,
			RapidDivisor:    3,
			MultishotOffset: 15,
			MaxHealth:       100,
			InvincibleMS:    1500,
			MaxSpecial:      100,
			SpecialPerKill:  5,
			SpecialDamage:   50,
			HitShake:        10,
		},
		Bullets: ShooterBullets{
			Speed:       12,
			Damage:      25,
			EnemySpeed:  6,
			EnemyDamage: 20,
		},
		Enemies: map[string]EnemyType{
			"scout":   {Health: 25, Speed: 4, Score: 100, Size: 35, FireRateMS: 0, Pattern: "zigzag", Color: "orange", Glyph: "v"},
			"fighter": {Health: 50, Speed: 2.5, Score: 250, Size: 45, FireRateMS: 2000, Pattern: "track", Color: "magenta", Glyph: "W"},
			"bomber":  {Health: 100, Speed: 1.5, Score: 500, Size: 60, FireRateMS: 3000, Pattern: "straight", Color: "mint", Glyph: "M"},
		},
		PowerUps: ShooterPowerUps{
			Chance:     0.15,
			DurationMS: 8000,
			Speed:      2,
			Size:       30,
			Types:      []string{"rapidfire", "multishot", "shield", "nuke"},
		},
		Combo: ComboConfig{TimeoutMS: 2000},
		Waves: WaveSettings{
			BaseCount:   5,
			Increment:   3,
			SpawnRateMS: 1500,
			SpawnStepMS: 100,
			MinSpawnMS:  500,
			DelayMS:     3000,
			HealBonus:   20,
			DefaultType: "scout",
			Tiers: []TierConfig{
				{MinWave: 2, Types: []WeightEntry{{Type: "fighter", Chance: 0.3}}},
				{MinWave: 3, Types: []WeightEntry{{Type: "bomber", Chance: 0.2}, {Type: "fighter", Chance: 0.3}}},
			},
		},
		Contact:   ContactDamage{Player: 30, Enemy: 50},
		Starfield: StarfieldConfig{Stars: 150, MinSpeed: 0.5, MaxSpeed: 2.5},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				HealthMultiplier: 0.5,
			},
		},
	}
}

// DefaultTowerDefenseConfig returns the default Neon Defense configuration.
func DefaultTowerDefenseConfig() TowerDefenseConfig {
	return TowerDefenseConfig{
		World:      WorldSize{Width: 800, Height: 600},
		StartMoney: 175,
		Lives:      20,
		Path: []Point{
			{X: 0, Y: 300}, {X: 200, Y: 300}, {X: 200, Y: 100}, {X: 600, Y: 100},
			{X: 600, Y: 500}, {X: 400, Y: 500}, {X: 400, Y: 300}, {X: 800, Y: 300},
		},
		PathWidth: 40,
		Towers: []TowerType{
			{Name: "BLASTER", Cost: 50, Range: 150, Cooldown: 60, Damage: 20, Color: "cyan", Glyph: "B"},
			{Name: "SNIPER", Cost: 150, Range: 300, Cooldown: 120, Damage: 100, Color: "pink", Glyph: "S"},
			{Name: "RAPID", Cost: 300, Range: 100, Cooldown: 10, Damage: 5, Color: "yellow", Glyph: "R"},
		},
		Enemy: TDEnemy{
			BaseSpeed:     1.5,
			SpeedPerWave:  0.1,
			BaseHealth:    80,
			HealthPerWave: 30,
			Radius:        15,
			Bounty:        25,
			Score:         10,
			ArriveDist:    5,
		},
		Waves: TDWaves{
			BaseCount:      5,
			PerWave:        2,
			BaseIntervalMS: 1000,
			StepMS:         50,
			MaxReductionMS: 800,
		},
		Upgrade: UpgradeConfig{
			CostFactor:   0.8,
			DamageMult:   1.3,
			RangeMult:    1.1,
			CooldownMult: 0.9,
			MinCooldown:  5,
			SellRefund:   0.5,
		},
		Placement: PlacementConfig{
			MinSpacing:    40,
			PathClearance: 30,
			SelectRadius:  20,
		},
		Projectile:  TDProjectile{Speed: 10},
		ParticleTTL: 20,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 0,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.3,
				HealthMultiplier: 0.5,
			},
		},
	}
}

// DefaultRunnerConfig returns the default Neon Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldSize{Width: 800, Height: 400},
		Physics: RunnerPhysics{
			Gravity:     0.8,
			JumpImpulse: 15,
			BaseSpeed:   5,
			SpeedStep:   0.5,
			SpeedEvery:  50,
			FloorHeight: 50,
		},
		Obstacles: RunnerObstacles{
			MinWidth:    30,
			MaxWidth:    60,
			MinHeight:   40,
			MaxHeight:   80,
			MinGap:      250,
			SpawnChance: 0.02,
			PassScore:   10,
		},
		Player: RunnerPlayer{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Particles: 50,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				GapReduction:    60,
			},
		},
	}
}

// DefaultHackerConfig returns the default Hacker Tycoon configuration.
func DefaultHackerConfig() HackerConfig {
	return HackerConfig{
		ClickPower: 1,
		IncomeMS:   1000,
		LogLines:   8,
		Software: []ShopItem{
			{ID: "s1", Name: "Script Kiddie", BaseCost: 15, CostMult: 1.5, Benefit: 1},
			{ID: "s2", Name: "SQL Injection", BaseCost: 100, CostMult: 1.4, Benefit: 5},
			{ID: "s3", Name: "Zero-Day Exploit", BaseCost: 500, CostMult: 1.4, Benefit: 25},
			{ID: "s4", Name: "AI Assistant", BaseCost: 2500, CostMult: 1.4, Benefit: 100},
		},
		Hardware: []ShopItem{
			{ID: "h1", Name: "Old Laptop", BaseCost: 25, CostMult: 1.2, Benefit: 1},
			{ID: "h2", Name: "Desktop PC", BaseCost: 150, CostMult: 1.25, Benefit: 5},
			{ID: "h3", Name: "Server Rack", BaseCost: 1000, CostMult: 1.3, Benefit: 20},
			{ID: "h4", Name: "Botnet Node", BaseCost: 5000, CostMult: 1.35, Benefit: 80},
			{ID: "h5", Name: "Quantum Mainframe", BaseCost: 25000, CostMult: 1.4, Benefit: 500},
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}

// DefaultMazeConfig returns the default Data Vault configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Width:      10,
		Height:     10,
		Integrity:  100,
		TrapDamage: 25,
		Attempts:   3,
		MessageMS:  2000,
		Odds: MazeOdds{
			Treasure: 0.15,
			Trap:     0.1,
			Key:      0.05,
			NPC:      0.03,
		},
		Scores: MazeScores{
			Treasure: 50,
			Key:      25,
			Escape:   500,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: "none",
			},
		},
	}
}
