package scripting

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func defenseFormula() Formula {
	return Formula{
		BaseCount:      5,
		PerWave:        2,
		BaseIntervalMS: 1000,
		StepMS:         50,
		MaxReductionMS: 800,
		BaseHealth:     80,
		HealthPerWave:  30,
		BaseSpeed:      1.5,
		SpeedPerWave:   0.1,
	}
}

func TestFormulaPlan(t *testing.T) {
	f := defenseFormula()

	tests := []struct {
		wave     int
		count    int
		interval time.Duration
		health   float64
	}{
		{1, 7, 950 * time.Millisecond, 110},
		{4, 13, 800 * time.Millisecond, 200},
		{16, 37, 200 * time.Millisecond, 560},
		{40, 85, 200 * time.Millisecond, 1280},
	}
	for _, tt := range tests {
		p := f.Plan(tt.wave)
		if p.Count != tt.count || p.Interval != tt.interval || p.Health != tt.health {
			t.Errorf("wave %d: got %+v", tt.wave, p)
		}
	}
}

func TestDefaultScriptMatchesFormula(t *testing.T) {
	f := defenseFormula()
	e, err := New("", f, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer e.Close()

	for _, wave := range []int{1, 2, 5, 16, 30} {
		got, want := e.Plan(wave), f.Plan(wave)
		if got.Count != want.Count || got.Interval != want.Interval || got.Health != want.Health {
			t.Errorf("wave %d: script %+v, formula %+v", wave, got, want)
		}
		if d := got.Speed - want.Speed; d > 1e-9 || d < -1e-9 {
			t.Errorf("wave %d: speed %v, want %v", wave, got.Speed, want.Speed)
		}
	}
}

func TestCustomScriptOverridesFields(t *testing.T) {
	src := `function wave_plan(n) return { count = n * 10 } end`
	e, err := New(src, defenseFormula(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer e.Close()

	p := e.Plan(3)
	if p.Count != 30 {
		t.Errorf("count = %d, want 30", p.Count)
	}
	// Fields the script omits come from the formula
	if p.Interval != 850*time.Millisecond {
		t.Errorf("interval = %v, want 850ms", p.Interval)
	}
}

func TestRuntimeErrorFallsBack(t *testing.T) {
	src := `function wave_plan(n) error("boom") end`
	e, err := New(src, defenseFormula(), nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer e.Close()

	if p := e.Plan(1); p.Count != 7 {
		t.Errorf("expected formula fallback, got %+v", p)
	}
}

func TestBrokenScriptsAreRejected(t *testing.T) {
	if _, err := New("this is not lua", defenseFormula(), nil); err == nil {
		t.Error("expected syntax error")
	}
	if _, err := New("x = 1", defenseFormula(), nil); err == nil {
		t.Error("expected error when wave_plan is missing")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "waves.lua")
	if err := os.WriteFile(path, []byte(`function wave_plan(n) return { count = 1 } end`), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := Load(path, defenseFormula(), nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	defer e.Close()
	if p := e.Plan(9); p.Count != 1 {
		t.Errorf("count = %d, want 1", p.Count)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.lua"), defenseFormula(), nil); err == nil {
		t.Error("expected error for missing file")
	}
}
