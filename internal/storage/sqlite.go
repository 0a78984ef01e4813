// Package storage provides SQLite-based persistence for game scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The schema is managed by goose migrations embedded in the binary.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is the scores database used when --db is not set.
const DefaultPath = "~/.arcade/scores.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
// Stats is zero for scores saved without a session row.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
	Stats     SessionStats
}

const scoreColumns = `sc.id, sc.game_id, sc.score, sc.created_at,
	COALESCE(se.wave, 0), COALESCE(se.best_combo, 0), COALESCE(se.kills, 0), COALESCE(se.duration_secs, 0)
	FROM scores sc LEFT JOIN sessions se ON se.score_id = sc.id`

// SessionStats are the extra end-of-session figures saved with a score.
type SessionStats struct {
	Wave      int
	BestCombo int
	Kills     int
	Duration  time.Duration
}

// Open opens the score database at dbPath, creating it and its parent
// directories when missing, and brings the schema up to date.
// A leading ~ is expanded to the user's home directory.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", dbPath, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One writer at a time keeps SQLite from returning SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err == nil {
		err = migrate(ctx, db)
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot prepare %s: %w", dbPath, err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordSession saves a finished session's score and stats in one transaction.
// It reports whether the score beat the previous high score.
func (s *Store) RecordSession(ctx context.Context, gameID string, score int, stats SessionStats) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var prev sql.NullInt64
	if err := tx.QueryRowContext(ctx, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&prev); err != nil {
		return false, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	res, err := tx.ExecContext(ctx, "INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return false, fmt.Errorf("storage: cannot save score: %w", err)
	}
	scoreID, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (score_id, wave, best_combo, kills, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		scoreID, stats.Wave, stats.BestCombo, stats.Kills, int(stats.Duration.Seconds()),
	); err != nil {
		return false, fmt.Errorf("storage: cannot save session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit session: %w", err)
	}
	return !prev.Valid || int64(score) > prev.Int64, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 WHERE sc.game_id = ?
		 ORDER BY sc.score DESC, sc.id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+scoreColumns+`
		 WHERE sc.game_id = ?
		 ORDER BY sc.score DESC, sc.id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanScores(rows)
}

func scanScores(rows *sql.Rows) ([]ScoreEntry, error) {
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		var secs int64
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt,
			&e.Stats.Wave, &e.Stats.BestCombo, &e.Stats.Kills, &secs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.Stats.Duration = time.Duration(secs) * time.Second
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and session stats for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec(
		"DELETE FROM sessions WHERE score_id IN (SELECT id FROM scores WHERE game_id = ?)",
		gameID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	BestWave   int
	BestCombo  int
	LastPlayed time.Time
}

const statsColumns = `COUNT(*), COALESCE(MAX(sc.score), 0), COALESCE(AVG(sc.score), 0), COALESCE(SUM(sc.score), 0),
	COALESCE(MAX(se.wave), 0), COALESCE(MAX(se.best_combo), 0), MAX(sc.created_at)
	FROM scores sc LEFT JOIN sessions se ON se.score_id = sc.id`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanStats fills gs from a row of statsColumns, after any leading columns in lead.
func scanStats(row rowScanner, gs *GameStats, lead ...any) error {
	var lastPlayed any
	dest := append(lead, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
		&gs.BestWave, &gs.BestCombo, &lastPlayed)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	gs.LastPlayed = parseTime(lastPlayed)
	return nil
}

// GetGameStats aggregates every stored session of one game.
// An unplayed game yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	row := s.db.QueryRow(`SELECT `+statsColumns+` WHERE sc.game_id = ?`, gameID)
	if err := scanStats(row, gs); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return gs, nil
}

// GetAllGamesStats aggregates per game, keyed by game ID. Unplayed games are absent.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(`SELECT sc.game_id, ` + statsColumns + ` GROUP BY sc.game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		if err := scanStats(rows, gs, &gs.GameID); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}
