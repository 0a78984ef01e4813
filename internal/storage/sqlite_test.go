package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seed(t *testing.T, store *Store, gameID string, scores ...int) {
	t.Helper()
	for _, sc := range scores {
		if _, err := store.SaveScore(gameID, sc); err != nil {
			t.Fatalf("SaveScore(%s, %d) failed: %v", gameID, sc, err)
		}
	}
}

func scoresOf(entries []ScoreEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOpenCreatesNestedDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "arcade", "data", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("database file missing: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := expandHome("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "scores.db"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}
	if got, _ := expandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed to %q", got)
	}
}

func TestTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, "shooter", 100, 50, 200, 400, 300)
	seed(t, store, "runner", 500)

	tests := []struct {
		game  string
		limit int
		want  []int
	}{
		{"shooter", 10, []int{400, 300, 200, 100, 50}},
		{"shooter", 3, []int{400, 300, 200}},
		{"runner", 10, []int{500}},
		{"maze", 10, []int{}},
	}
	for _, tt := range tests {
		got, err := store.TopScores(tt.game, tt.limit)
		if err != nil {
			t.Fatalf("TopScores(%s) failed: %v", tt.game, err)
		}
		if !equalInts(scoresOf(got), tt.want) {
			t.Errorf("TopScores(%s, %d) = %v, want %v", tt.game, tt.limit, scoresOf(got), tt.want)
		}
	}
}

func TestTopScoresTieKeepsInsertOrder(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, "hacker", 70, 70)

	got, _ := store.TopScores("hacker", 2)
	if len(got) != 2 || got[0].ID > got[1].ID {
		t.Errorf("ties should list the earlier score first: %+v", got)
	}
}

func TestAllScoresIsUnbounded(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 25; i++ {
		seed(t, store, "maze", i*10)
	}

	all, err := store.AllScores("maze")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 25 || all[0].Score != 240 {
		t.Errorf("AllScores() returned %d entries, first %d", len(all), all[0].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	if high, err := store.HighScore("shooter"); err != nil || high != 0 {
		t.Fatalf("HighScore() on empty game = %d, %v", high, err)
	}
	seed(t, store, "shooter", 100, 300, 200)
	if high, _ := store.HighScore("shooter"); high != 300 {
		t.Errorf("HighScore() = %d, want 300", high)
	}
}

func TestClearScoresOnlyTouchesOneGame(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, "shooter", 100, 200)
	seed(t, store, "runner", 300)

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("shooter", 10); len(left) != 0 {
		t.Errorf("shooter still has %d scores", len(left))
	}
	if left, _ := store.TopScores("runner", 10); len(left) != 1 {
		t.Error("runner scores were cleared too")
	}
}

func TestMigrationsAppliedOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	v, err := store.SchemaVersion(context.Background())
	if err != nil || v != 2 {
		t.Fatalf("SchemaVersion() = %d, %v; want 2", v, err)
	}
	seed(t, store, "maze", 500)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()
	if high, _ := store.HighScore("maze"); high != 500 {
		t.Errorf("HighScore() after reopen = %d, want 500", high)
	}
}

func TestRecordSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	first := SessionStats{Wave: 3, BestCombo: 4, Kills: 12, Duration: 90 * time.Second}

	steps := []struct {
		score   int
		stats   SessionStats
		newHigh bool
	}{
		{1200, first, true},
		{800, SessionStats{Wave: 5, BestCombo: 2}, false},
		{1200, SessionStats{}, false}, // a tie is not a new high
	}
	for i, st := range steps {
		got, err := store.RecordSession(ctx, "shooter", st.score, st.stats)
		if err != nil {
			t.Fatalf("RecordSession #%d failed: %v", i, err)
		}
		if got != st.newHigh {
			t.Errorf("RecordSession #%d newHigh = %v, want %v", i, got, st.newHigh)
		}
	}

	top, err := store.TopScores("shooter", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if top[0].Stats != first {
		t.Errorf("top score stats = %+v, want %+v", top[0].Stats, first)
	}

	stats, err := store.GetGameStats("shooter")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 1200 || stats.BestWave != 5 || stats.BestCombo != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	if err := store.ClearScores("shooter"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	stats, _ = store.GetGameStats("shooter")
	if stats.GamesCount != 0 || stats.BestWave != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats after clear, got %+v", stats)
	}
}

func TestAllGamesStats(t *testing.T) {
	store := openTestStore(t)
	seed(t, store, "hacker", 10, 30)
	seed(t, store, "towerdefense", 70)
	if _, err := store.RecordSession(context.Background(), "towerdefense", 40, SessionStats{Wave: 6, BestCombo: 2}); err != nil {
		t.Fatalf("RecordSession() failed: %v", err)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if h := all["hacker"]; h.GamesCount != 2 || h.AvgScore != 20 || h.BestWave != 0 {
		t.Errorf("unexpected hacker stats: %+v", h)
	}
	if td := all["towerdefense"]; td.GamesCount != 2 || td.HighScore != 70 || td.BestWave != 6 || td.TotalScore != 110 {
		t.Errorf("unexpected towerdefense stats: %+v", td)
	}
}
