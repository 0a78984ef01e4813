// Package scripting runs Lua wave plans for wave-based games.
package scripting

import (
	_ "embed"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"
)

//go:embed waves.lua
var defaultWaveScript string

// WavePlan describes one wave: how many enemies, how often, how tough.
type WavePlan struct {
	Count    int
	Interval time.Duration
	Health   float64
	Speed    float64
}

// Planner produces the plan for wave n (1-based).
type Planner interface {
	Plan(n int) WavePlan
}

// Formula is the built-in linear plan, used directly or as the Lua fallback.
type Formula struct {
	BaseCount      int
	PerWave        int
	BaseIntervalMS int
	StepMS         int
	MaxReductionMS int
	BaseHealth     float64
	HealthPerWave  float64
	BaseSpeed      float64
	SpeedPerWave   float64
}

// Plan implements Planner.
func (f Formula) Plan(n int) WavePlan {
	reduction := f.StepMS * n
	if reduction > f.MaxReductionMS {
		reduction = f.MaxReductionMS
	}
	return WavePlan{
		Count:    f.BaseCount + f.PerWave*n,
		Interval: time.Duration(f.BaseIntervalMS-reduction) * time.Millisecond,
		Health:   f.BaseHealth + f.HealthPerWave*float64(n),
		Speed:    f.BaseSpeed + f.SpeedPerWave*float64(n),
	}
}

// globals exposes the formula parameters to scripts.
func (f Formula) globals() map[string]float64 {
	return map[string]float64{
		"BASE_COUNT":       float64(f.BaseCount),
		"PER_WAVE":         float64(f.PerWave),
		"BASE_INTERVAL_MS": float64(f.BaseIntervalMS),
		"STEP_MS":          float64(f.StepMS),
		"MAX_REDUCTION_MS": float64(f.MaxReductionMS),
		"BASE_HEALTH":      f.BaseHealth,
		"HEALTH_PER_WAVE":  f.HealthPerWave,
		"BASE_SPEED":       f.BaseSpeed,
		"SPEED_PER_WAVE":   f.SpeedPerWave,
	}
}

// Engine wraps a gopher-lua VM holding a wave_plan(n) function.
// Single-goroutine access only (game loop).
type Engine struct {
	vm       *lua.LState
	fallback Formula
	log      *log.Logger
}

// New loads a wave script from source. Empty source uses the embedded default.
func New(source string, fallback Formula, logger *log.Logger) (*Engine, error) {
	if source == "" {
		source = defaultWaveScript
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	for name, v := range fallback.globals() {
		vm.SetGlobal(name, lua.LNumber(v))
	}

	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, fmt.Errorf("scripting: load wave script: %w", err)
	}
	if vm.GetGlobal("wave_plan").Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("scripting: wave_plan is not defined")
	}

	return &Engine{vm: vm, fallback: fallback, log: logger}, nil
}

// Load reads a wave script from path, or the embedded default when path is empty.
func Load(path string, fallback Formula, logger *log.Logger) (*Engine, error) {
	if path == "" {
		return New("", fallback, logger)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scripting: read %s: %w", path, err)
	}
	return New(string(data), fallback, logger)
}

// Plan calls wave_plan(n). Missing fields and script errors fall back to the formula.
func (e *Engine) Plan(n int) WavePlan {
	plan := e.fallback.Plan(n)

	if err := e.vm.CallByParam(lua.P{
		Fn:      e.vm.GetGlobal("wave_plan"),
		NRet:    1,
		Protect: true,
	}, lua.LNumber(n)); err != nil {
		e.log.Error("lua wave_plan error", "wave", n, "error", err)
		return plan
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua wave_plan returned non-table", "wave", n)
		return plan
	}

	if v, ok := lNumber(rt, "count"); ok && v >= 0 {
		plan.Count = int(v)
	}
	if v, ok := lNumber(rt, "interval_ms"); ok && v > 0 {
		plan.Interval = time.Duration(math.Round(v)) * time.Millisecond
	}
	if v, ok := lNumber(rt, "health"); ok && v > 0 {
		plan.Health = v
	}
	if v, ok := lNumber(rt, "speed"); ok && v > 0 {
		plan.Speed = v
	}
	return plan
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// lNumber reads a numeric field from a Lua table.
func lNumber(t *lua.LTable, key string) (float64, bool) {
	v, ok := t.RawGetString(key).(lua.LNumber)
	return float64(v), ok
}
