// Package config provides YAML/TOML game configuration loading and
// difficulty management for the arcade platform.
package config

// WorldSize is the logical playfield in world units. Screens scale it to cells.
type WorldSize struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// Point is a world-space coordinate.
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

// ShooterConfig contains all configuration for Neon Fury.
type ShooterConfig struct {
	World      WorldSize            `yaml:"world" toml:"world"`
	Player     ShooterPlayer        `yaml:"player" toml:"player"`
	Bullets    ShooterBullets       `yaml:"bullets" toml:"bullets"`
	Enemies    map[string]EnemyType `yaml:"enemies" toml:"enemies"`
	PowerUps   ShooterPowerUps      `yaml:"powerups" toml:"powerups"`
	Combo      ComboConfig          `yaml:"combo" toml:"combo"`
	Waves      WaveSettings         `yaml:"waves" toml:"waves"`
	Contact    ContactDamage        `yaml:"contact" toml:"contact"`
	Starfield  StarfieldConfig      `yaml:"starfield" toml:"starfield"`
	Difficulty DifficultyConfig     `yaml:"difficulty" toml:"difficulty"`
}

// ShooterPlayer defines the player ship.
type ShooterPlayer struct {
	Speed           float64 `yaml:"speed" toml:"speed"`
	Size            float64 `yaml:"size" toml:"size"`
	FireRateMS      int     `yaml:"fire_rate_ms" toml:"fire_rate_ms"`
	RapidDivisor    float64 `yaml:"rapid_divisor" toml:"rapid_divisor"`
	MultishotOffset float64 `yaml:"multishot_offset" toml:"multishot_offset"`
	MaxHealth       float64 `yaml:"max_health" toml:"max_health"`
	InvincibleMS    int     `yaml:"invincible_ms" toml:"invincible_ms"`
	MaxSpecial      float64 `yaml:"max_special" toml:"max_special"`
	SpecialPerKill  float64 `yaml:"special_per_kill" toml:"special_per_kill"`
	SpecialDamage   float64 `yaml:"special_damage" toml:"special_damage"`
	HitShake        float64 `yaml:"hit_shake" toml:"hit_shake"`
}

// ShooterBullets defines projectile speeds and damage for both sides.
type ShooterBullets struct {
	Speed       float64 `yaml:"speed" toml:"speed"`
	Damage      float64 `yaml:"damage" toml:"damage"`
	EnemySpeed  float64 `yaml:"enemy_speed" toml:"enemy_speed"`
	EnemyDamage float64 `yaml:"enemy_damage" toml:"enemy_damage"`
}

// EnemyType is the static descriptor of one enemy kind.
type EnemyType struct {
	Health     float64 `yaml:"health" toml:"health"`
	Speed      float64 `yaml:"speed" toml:"speed"`
	Score      int     `yaml:"score" toml:"score"`
	Size       float64 `yaml:"size" toml:"size"`
	FireRateMS int     `yaml:"fire_rate_ms" toml:"fire_rate_ms"`
	Pattern    string  `yaml:"pattern" toml:"pattern"` // zigzag, track, straight
	Color      string  `yaml:"color" toml:"color"`
	Glyph      string  `yaml:"glyph" toml:"glyph"`
}

// ShooterPowerUps defines drop chance and buff duration.
type ShooterPowerUps struct {
	Chance     float64  `yaml:"chance" toml:"chance"`
	DurationMS int      `yaml:"duration_ms" toml:"duration_ms"`
	Speed      float64  `yaml:"speed" toml:"speed"`
	Size       float64  `yaml:"size" toml:"size"`
	Types      []string `yaml:"types" toml:"types"`
}

// ComboConfig defines the kill-chain window.
type ComboConfig struct {
	TimeoutMS int `yaml:"timeout_ms" toml:"timeout_ms"`
}

// WaveSettings is the pacing curve of a wave-based game.
type WaveSettings struct {
	BaseCount   int          `yaml:"base_count" toml:"base_count"`
	Increment   int          `yaml:"increment" toml:"increment"`
	SpawnRateMS int          `yaml:"spawn_rate_ms" toml:"spawn_rate_ms"`
	SpawnStepMS int          `yaml:"spawn_step_ms" toml:"spawn_step_ms"`
	MinSpawnMS  int          `yaml:"min_spawn_ms" toml:"min_spawn_ms"`
	DelayMS     int          `yaml:"delay_ms" toml:"delay_ms"`
	HealBonus   float64      `yaml:"heal_bonus" toml:"heal_bonus"`
	DefaultType string       `yaml:"default_type" toml:"default_type"`
	Tiers       []TierConfig `yaml:"tiers" toml:"tiers"`
}

// TierConfig unlocks weighted enemy types from a wave onward.
type TierConfig struct {
	MinWave int           `yaml:"min_wave" toml:"min_wave"`
	Types   []WeightEntry `yaml:"types" toml:"types"`
}

// WeightEntry is one enemy type with its spawn probability.
type WeightEntry struct {
	Type   string  `yaml:"type" toml:"type"`
	Chance float64 `yaml:"chance" toml:"chance"`
}

// ContactDamage is applied when the player rams an enemy.
type ContactDamage struct {
	Player float64 `yaml:"player" toml:"player"`
	Enemy  float64 `yaml:"enemy" toml:"enemy"`
}

// StarfieldConfig defines the ambient background.
type StarfieldConfig struct {
	Stars    int     `yaml:"stars" toml:"stars"`
	MinSpeed float64 `yaml:"min_speed" toml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed" toml:"max_speed"`
}

// TowerDefenseConfig contains all configuration for Neon Defense.
type TowerDefenseConfig struct {
	World       WorldSize        `yaml:"world" toml:"world"`
	StartMoney  int              `yaml:"start_money" toml:"start_money"`
	Lives       int              `yaml:"lives" toml:"lives"`
	Path        []Point          `yaml:"path" toml:"path"`
	PathWidth   float64          `yaml:"path_width" toml:"path_width"`
	Towers      []TowerType      `yaml:"towers" toml:"towers"`
	Enemy       TDEnemy          `yaml:"enemy" toml:"enemy"`
	Waves       TDWaves          `yaml:"waves" toml:"waves"`
	Upgrade     UpgradeConfig    `yaml:"upgrade" toml:"upgrade"`
	Placement   PlacementConfig  `yaml:"placement" toml:"placement"`
	Projectile  TDProjectile     `yaml:"projectile" toml:"projectile"`
	Difficulty  DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	ParticleTTL float64          `yaml:"particle_ttl" toml:"particle_ttl"`
}

// TowerType is the static descriptor of a buildable tower.
// Cooldown is measured in reference frames.
type TowerType struct {
	Name     string  `yaml:"name" toml:"name"`
	Cost     int     `yaml:"cost" toml:"cost"`
	Range    float64 `yaml:"range" toml:"range"`
	Cooldown float64 `yaml:"cooldown" toml:"cooldown"`
	Damage   float64 `yaml:"damage" toml:"damage"`
	Color    string  `yaml:"color" toml:"color"`
	Glyph    string  `yaml:"glyph" toml:"glyph"`
}

// TDEnemy scales creeps with the wave number.
type TDEnemy struct {
	BaseSpeed     float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedPerWave  float64 `yaml:"speed_per_wave" toml:"speed_per_wave"`
	BaseHealth    float64 `yaml:"base_health" toml:"base_health"`
	HealthPerWave float64 `yaml:"health_per_wave" toml:"health_per_wave"`
	Radius        float64 `yaml:"radius" toml:"radius"`
	Bounty        int     `yaml:"bounty" toml:"bounty"`
	Score         int     `yaml:"score" toml:"score"`
	ArriveDist    float64 `yaml:"arrive_dist" toml:"arrive_dist"`
}

// TDWaves defines the built-in wave plan and an optional Lua override.
type TDWaves struct {
	BaseCount      int    `yaml:"base_count" toml:"base_count"`
	PerWave        int    `yaml:"per_wave" toml:"per_wave"`
	BaseIntervalMS int    `yaml:"base_interval_ms" toml:"base_interval_ms"`
	StepMS         int    `yaml:"step_ms" toml:"step_ms"`
	MaxReductionMS int    `yaml:"max_reduction_ms" toml:"max_reduction_ms"`
	Script         string `yaml:"script" toml:"script"`
}

// UpgradeConfig defines tower upgrade scaling and resale.
type UpgradeConfig struct {
	CostFactor   float64 `yaml:"cost_factor" toml:"cost_factor"`
	DamageMult   float64 `yaml:"damage_mult" toml:"damage_mult"`
	RangeMult    float64 `yaml:"range_mult" toml:"range_mult"`
	CooldownMult float64 `yaml:"cooldown_mult" toml:"cooldown_mult"`
	MinCooldown  float64 `yaml:"min_cooldown" toml:"min_cooldown"`
	SellRefund   float64 `yaml:"sell_refund" toml:"sell_refund"`
}

// PlacementConfig defines tower spacing and click selection radius.
type PlacementConfig struct {
	MinSpacing    float64 `yaml:"min_spacing" toml:"min_spacing"`
	PathClearance float64 `yaml:"path_clearance" toml:"path_clearance"`
	SelectRadius  float64 `yaml:"select_radius" toml:"select_radius"`
}

// TDProjectile defines homing shots.
type TDProjectile struct {
	Speed float64 `yaml:"speed" toml:"speed"`
}

// RunnerConfig contains all configuration for Neon Runner.
type RunnerConfig struct {
	World      WorldSize        `yaml:"world" toml:"world"`
	Physics    RunnerPhysics    `yaml:"physics" toml:"physics"`
	Obstacles  RunnerObstacles  `yaml:"obstacles" toml:"obstacles"`
	Player     RunnerPlayer     `yaml:"player" toml:"player"`
	Particles  int              `yaml:"particles" toml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// RunnerPhysics defines gravity and speed. Values are per reference frame.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"`
	BaseSpeed   float64 `yaml:"base_speed" toml:"base_speed"`
	SpeedStep   float64 `yaml:"speed_step" toml:"speed_step"`
	SpeedEvery  int     `yaml:"speed_every" toml:"speed_every"`
	FloorHeight float64 `yaml:"floor_height" toml:"floor_height"`
}

// RunnerObstacles defines obstacle sizes and spawn rules.
type RunnerObstacles struct {
	MinWidth    float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth    float64 `yaml:"max_width" toml:"max_width"`
	MinHeight   float64 `yaml:"min_height" toml:"min_height"`
	MaxHeight   float64 `yaml:"max_height" toml:"max_height"`
	MinGap      float64 `yaml:"min_gap" toml:"min_gap"`
	SpawnChance float64 `yaml:"spawn_chance" toml:"spawn_chance"`
	PassScore   int     `yaml:"pass_score" toml:"pass_score"`
}

// RunnerPlayer defines the runner's box.
type RunnerPlayer struct {
	X      float64 `yaml:"x" toml:"x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// HackerConfig contains all configuration for Hacker Tycoon.
type HackerConfig struct {
	ClickPower int              `yaml:"click_power" toml:"click_power"`
	IncomeMS   int              `yaml:"income_ms" toml:"income_ms"`
	LogLines   int              `yaml:"log_lines" toml:"log_lines"`
	Software   []ShopItem       `yaml:"software" toml:"software"`
	Hardware   []ShopItem       `yaml:"hardware" toml:"hardware"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ShopItem is a purchasable upgrade. Cost is floor(base * mult^count).
type ShopItem struct {
	ID       string  `yaml:"id" toml:"id"`
	Name     string  `yaml:"name" toml:"name"`
	BaseCost int     `yaml:"base_cost" toml:"base_cost"`
	CostMult float64 `yaml:"cost_mult" toml:"cost_mult"`
	Benefit  int     `yaml:"benefit" toml:"benefit"`
}

// MazeConfig contains all configuration for Data Vault.
type MazeConfig struct {
	Width      int              `yaml:"width" toml:"width"`
	Height     int              `yaml:"height" toml:"height"`
	Integrity  int              `yaml:"integrity" toml:"integrity"`
	TrapDamage int              `yaml:"trap_damage" toml:"trap_damage"`
	Attempts   int              `yaml:"attempts" toml:"attempts"`
	MessageMS  int              `yaml:"message_ms" toml:"message_ms"`
	Odds       MazeOdds         `yaml:"odds" toml:"odds"`
	Scores     MazeScores       `yaml:"scores" toml:"scores"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// MazeOdds are per-cell probabilities used by the generator.
type MazeOdds struct {
	Treasure float64 `yaml:"treasure" toml:"treasure"`
	Trap     float64 `yaml:"trap" toml:"trap"`
	Key      float64 `yaml:"key" toml:"key"`
	NPC      float64 `yaml:"npc" toml:"npc"`
}

// MazeScores are points per event.
type MazeScores struct {
	Treasure int `yaml:"treasure" toml:"treasure"`
	Key      int `yaml:"key" toml:"key"`
	Escape   int `yaml:"escape" toml:"escape"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	HealthMultiplier float64 `yaml:"health_multiplier" toml:"health_multiplier"` // Multiplier added to enemy health at max difficulty
	GapReduction     float64 `yaml:"gap_reduction" toml:"gap_reduction"`         // Obstacle gap reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset; unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Apply sets progression on or off and the starting level for a preset.
func (d *DifficultyConfig) Apply(preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		d.Enabled = false
		return
	}
	d.Enabled = true
	d.InitialLevel = InitialLevelForPreset(preset)
}
