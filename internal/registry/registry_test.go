package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

type fakeGame struct {
	id         string
	configured Options
	failWith   error
}

func (g *fakeGame) ID() string                                          { return g.id }
func (g *fakeGame) Title() string                                       { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig)                            {}
func (g *fakeGame) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                                 {}
func (g *fakeGame) State() core.GameState                               { return core.GameState{} }

func (g *fakeGame) Configure(opts Options) error {
	g.configured = opts
	return g.failWith
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func() Game { return &fakeGame{id: "zz-fake"} })

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = true
			if info.Title != "Fake zz-fake" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() is missing the registered game")
	}

	g, err := Create("zz-fake")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-fake" {
		t.Errorf("ID = %q", g.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz-dup", func() Game { return &fakeGame{id: "zz-dup"} })
}

func TestCreateConfigured(t *testing.T) {
	Register("zz-conf", func() Game { return &fakeGame{id: "zz-conf"} })

	g, err := CreateConfigured("zz-conf", Options{ConfigPath: "x.yaml", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("CreateConfigured() failed: %v", err)
	}
	fg := g.(*fakeGame)
	if fg.configured.ConfigPath != "x.yaml" || fg.configured.Difficulty != "hard" {
		t.Errorf("options not passed: %+v", fg.configured)
	}

	boom := errors.New("boom")
	Register("zz-bad", func() Game { return &fakeGame{id: "zz-bad", failWith: boom} })
	if _, err := CreateConfigured("zz-bad", Options{}); !errors.Is(err, boom) {
		t.Errorf("expected wrapped config error, got %v", err)
	}
}
