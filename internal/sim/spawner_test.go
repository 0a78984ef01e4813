package sim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shooterWaves() WaveConfig {
	return WaveConfig{
		BaseCount:       5,
		Increment:       3,
		BaseInterval:    1500 * time.Millisecond,
		IntervalStep:    100 * time.Millisecond,
		MinInterval:     500 * time.Millisecond,
		TransitionDelay: 3 * time.Second,
		DefaultType:     "scout",
		Tiers: []WeightTier{
			{MinWave: 2, Types: []WeightedType{{"fighter", 0.3}}},
			{MinWave: 3, Types: []WeightedType{{"bomber", 0.2}, {"fighter", 0.3}}},
		},
	}
}

func TestIntervalShrinksToFloor(t *testing.T) {
	ws := NewWaveScheduler(shooterWaves(), NewScheduler(), rand.New(rand.NewSource(1)))
	assert.Equal(t, 1400*time.Millisecond, ws.Interval())

	ws.state.Wave = 9
	assert.Equal(t, 600*time.Millisecond, ws.Interval())
	ws.state.Wave = 20
	assert.Equal(t, 500*time.Millisecond, ws.Interval())
}

func TestPickTypeWeightsByWave(t *testing.T) {
	ws := NewWaveScheduler(shooterWaves(), NewScheduler(), nil)
	r := rand.New(rand.NewSource(7))

	count := func(wave int) map[string]int {
		ws.state.Wave = wave
		seen := map[string]int{}
		for i := 0; i < 5000; i++ {
			seen[ws.PickType(r)]++
		}
		return seen
	}

	w1 := count(1)
	assert.Equal(t, 5000, w1["scout"], "wave 1 only spawns the base type")

	w2 := count(2)
	assert.Zero(t, w2["bomber"])
	assert.InDelta(t, 0.3, float64(w2["fighter"])/5000, 0.03)

	w3 := count(3)
	assert.InDelta(t, 0.2, float64(w3["bomber"])/5000, 0.03)
	assert.InDelta(t, 0.3, float64(w3["fighter"])/5000, 0.03)
	assert.InDelta(t, 0.5, float64(w3["scout"])/5000, 0.03)
}

func TestWaveWaitsForActiveEnemies(t *testing.T) {
	sched := NewScheduler()
	ws := NewWaveScheduler(shooterWaves(), sched, rand.New(rand.NewSource(1)))
	advanced := 0
	ws.OnAdvance = func(int) { advanced++ }

	now := time.Duration(0)
	spawned := 0
	for spawned < 5 {
		if ws.Tick(now, spawned).Spawn {
			spawned++
		}
		now += 2 * time.Second
	}
	require.Equal(t, 5, ws.State().Spawned)

	// Quota met but two enemies of the wave are alive.
	for i := 0; i < 10; i++ {
		d := ws.Tick(now, 2)
		assert.False(t, d.Spawn)
		assert.False(t, d.WaveCleared)
		assert.False(t, ws.Complete(2))
		now += 2 * time.Second
	}
	assert.Equal(t, 1, ws.Wave())

	d := ws.Tick(now, 0)
	assert.True(t, d.WaveCleared)
	assert.True(t, ws.State().Transition)

	// No spawns during the delay.
	sched.Advance(2 * time.Second)
	assert.False(t, ws.Tick(now+2*time.Second, 0).Spawn)
	assert.Equal(t, 1, ws.Wave())

	sched.Advance(time.Second)
	assert.Equal(t, 2, ws.Wave())
	assert.Equal(t, 8, ws.State().Required)
	assert.Equal(t, 1, advanced)
}

func TestResetCancelsPendingTransition(t *testing.T) {
	sched := NewScheduler()
	ws := NewWaveScheduler(shooterWaves(), sched, rand.New(rand.NewSource(1)))
	ws.state.Spawned = ws.state.Required
	ws.Tick(0, 0)
	require.Equal(t, 1, sched.Pending())

	ws.Reset()
	assert.Zero(t, sched.Pending())
	sched.Advance(10 * time.Second)
	assert.Equal(t, 1, ws.Wave())
}
