package config

import "math"

// DifficultyManager turns a DifficultyConfig into live multipliers.
// Level ramps from InitialLevel to 1 as score or ticks approach MaxAt.
type DifficultyManager struct {
	cfg   DifficultyConfig
	floor float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, floor: clampF(cfg.InitialLevel, 0, 1)}
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far along the ramp the run is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	var at int
	switch d.cfg.Progression.Type {
	case "score":
		at = score
	case "time":
		at = ticks
	default:
		return 0
	}
	span := float64(max(d.cfg.Progression.MaxAt, 1))
	return clampF(float64(at)/span, 0, 1)
}

// Level returns the difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.floor
	}
	return d.floor + d.progress(score, ticks)*(1-d.floor)
}

// Speed grows base up to base*(1+SpeedMultiplier) at full level.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Health grows base up to base*(1+HealthMultiplier) at full level.
func (d *DifficultyManager) Health(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.HealthMultiplier)
}

// Gap shrinks a spacing by up to GapReduction but never below minGap.
func (d *DifficultyManager) Gap(base, minGap float64, score, ticks int) float64 {
	return math.Max(minGap, base-d.Level(score, ticks)*d.cfg.Scaling.GapReduction)
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
