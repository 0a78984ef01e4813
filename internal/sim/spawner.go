package sim

import (
	"math/rand"
	"sort"
	"time"
)

// WeightedType is one entry of a weight tier. Chances are probabilities in [0, 1]
// and are tested in order against a single roll.
type WeightedType struct {
	Type   string
	Chance float64
}

// WeightTier applies from MinWave onward until a higher tier takes over.
type WeightTier struct {
	MinWave int
	Types   []WeightedType
}

// WaveConfig is the pacing curve of a wave-based game.
type WaveConfig struct {
	BaseCount       int
	Increment       int
	BaseInterval    time.Duration
	IntervalStep    time.Duration
	MinInterval     time.Duration
	TransitionDelay time.Duration
	DefaultType     string
	Tiers           []WeightTier
}

// WaveState holds the counters mutated only by the WaveScheduler.
type WaveState struct {
	Wave       int
	Spawned    int
	Required   int
	Transition bool
	LastSpawn  time.Duration
	spawnedAny bool
}

// SpawnDecision tells the game what to do this tick.
type SpawnDecision struct {
	Spawn bool
	Type  string
	Wave  int
	// WaveCleared is set on the tick that starts the transition delay.
	WaveCleared bool
}

// WaveScheduler decides when and what enemies enter the world.
type WaveScheduler struct {
	cfg   WaveConfig
	sched *Scheduler
	rng   *rand.Rand
	state WaveState
	delay TimerID

	// OnAdvance runs after the transition delay, with the new wave number.
	OnAdvance func(wave int)
}

// NewWaveScheduler creates a scheduler at wave 1.
func NewWaveScheduler(cfg WaveConfig, sched *Scheduler, rng *rand.Rand) *WaveScheduler {
	tiers := append([]WeightTier(nil), cfg.Tiers...)
	sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].MinWave > tiers[j].MinWave })
	cfg.Tiers = tiers
	ws := &WaveScheduler{cfg: cfg, sched: sched, rng: rng}
	ws.Reset()
	return ws
}

// State returns a copy of the wave counters.
func (ws *WaveScheduler) State() WaveState {
	return ws.state
}

// Wave returns the current wave number.
func (ws *WaveScheduler) Wave() int {
	return ws.state.Wave
}

// Required returns the spawn quota for a wave.
func (ws *WaveScheduler) Required(wave int) int {
	return ws.cfg.BaseCount + (wave-1)*ws.cfg.Increment
}

// Interval is the spawn cadence for the current wave, floored at MinInterval.
func (ws *WaveScheduler) Interval() time.Duration {
	d := ws.cfg.BaseInterval - time.Duration(ws.state.Wave)*ws.cfg.IntervalStep
	if d < ws.cfg.MinInterval {
		return ws.cfg.MinInterval
	}
	return d
}

// PickType rolls an enemy type using the tier for the current wave.
func (ws *WaveScheduler) PickType(r *rand.Rand) string {
	roll := r.Float64()
	for _, tier := range ws.cfg.Tiers {
		if ws.state.Wave < tier.MinWave {
			continue
		}
		acc := 0.0
		for _, wt := range tier.Types {
			acc += wt.Chance
			if roll < acc {
				return wt.Type
			}
		}
		break
	}
	return ws.cfg.DefaultType
}

// Complete reports whether the quota is met and no enemy of the wave is still active.
func (ws *WaveScheduler) Complete(activeOfWave int) bool {
	return ws.state.Spawned >= ws.state.Required && activeOfWave == 0
}

// Tick runs the spawn cadence. activeOfWave is the number of active enemies
// tagged with the current wave.
func (ws *WaveScheduler) Tick(now time.Duration, activeOfWave int) SpawnDecision {
	d := SpawnDecision{Wave: ws.state.Wave}
	if ws.state.spawnedAny && now-ws.state.LastSpawn <= ws.Interval() {
		return d
	}
	ws.state.LastSpawn = now
	ws.state.spawnedAny = true

	if ws.state.Transition {
		return d
	}
	if ws.state.Spawned >= ws.state.Required {
		if ws.Complete(activeOfWave) {
			ws.beginTransition()
			d.WaveCleared = true
		}
		return d
	}

	ws.state.Spawned++
	d.Spawn = true
	d.Type = ws.PickType(ws.rng)
	return d
}

func (ws *WaveScheduler) beginTransition() {
	ws.state.Transition = true
	ws.delay = ws.sched.After(ws.cfg.TransitionDelay, func() {
		ws.delay = 0
		ws.state.Wave++
		ws.state.Required = ws.Required(ws.state.Wave)
		ws.state.Spawned = 0
		ws.state.Transition = false
		if ws.OnAdvance != nil {
			ws.OnAdvance(ws.state.Wave)
		}
	})
}

// Reset cancels a pending transition and returns to wave 1.
func (ws *WaveScheduler) Reset() {
	if ws.delay != 0 {
		ws.sched.Cancel(ws.delay)
		ws.delay = 0
	}
	ws.state = WaveState{Wave: 1, Required: ws.Required(1)}
}
