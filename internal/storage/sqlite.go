// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/simon-arcade/internal/core"
)

// DefaultLimit is the number of rounds returned when no limit is given.
const DefaultLimit = 10

// Store manages the SQLite database connection for round persistence.
type Store struct {
	db *sql.DB
}

// RoundRecord is one finished round.
type RoundRecord struct {
	ID            int64
	RoundID       string
	Player        string
	GameID        string
	Mode          string
	Score         int
	Total         int
	Accuracy      int
	SecsPerAnswer float64
	MeanReaction  time.Duration
	BestReaction  time.Duration
	RoundSecs     int
	CreatedAt     time.Time
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode         string
	Rounds       int
	BestScore    int
	AvgScore     float64
	AvgAccuracy  float64
	TotalAnswers int64
	BestReaction time.Duration
	LastPlayed   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			game_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			accuracy INTEGER NOT NULL,
			secs_per_answer REAL NOT NULL DEFAULT 0,
			mean_reaction_ms INTEGER NOT NULL DEFAULT 0,
			best_reaction_ms INTEGER NOT NULL DEFAULT 0,
			round_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(mode, score DESC, accuracy DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round for player and returns the stored record.
func (s *Store) SaveRound(player string, sum core.RoundSummary) (RoundRecord, error) {
	rec := RoundRecord{
		RoundID:       uuid.NewString(),
		Player:        player,
		GameID:        sum.GameID,
		Mode:          sum.Mode,
		Score:         sum.Score,
		Total:         sum.Total,
		Accuracy:      sum.Accuracy,
		SecsPerAnswer: sum.SecsPerAnswer,
		MeanReaction:  sum.MeanReaction.Truncate(time.Millisecond),
		BestReaction:  sum.BestReaction.Truncate(time.Millisecond),
		RoundSecs:     int(sum.RoundLength / time.Second),
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds
		 (round_id, player, game_id, mode, score, total, accuracy, secs_per_answer,
		  mean_reaction_ms, best_reaction_ms, round_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RoundID,
		rec.Player,
		rec.GameID,
		rec.Mode,
		rec.Score,
		rec.Total,
		rec.Accuracy,
		rec.SecsPerAnswer,
		rec.MeanReaction.Milliseconds(),
		rec.BestReaction.Milliseconds(),
		rec.RoundSecs,
	)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("storage: cannot save round: %w", err)
	}

	rec.ID, err = result.LastInsertId()
	if err != nil {
		return RoundRecord{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return rec, nil
}

const roundColumns = `id, round_id, player, game_id, mode, score, total, accuracy,
	secs_per_answer, mean_reaction_ms, best_reaction_ms, round_secs, created_at`

// TopRounds retrieves the best rounds for mode, or for every mode when mode
// is empty. Ties on score are broken by accuracy, then by age.
func (s *Store) TopRounds(mode string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR mode = ?
		 ORDER BY score DESC, accuracy DESC, id ASC
		 LIMIT ?`,
		mode, mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return scanRounds(rows)
}

// RecentRounds retrieves the most recently saved rounds.
func (s *Store) RecentRounds(limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent rounds: %w", err)
	}
	return scanRounds(rows)
}

// RoundByID retrieves a round by its round ID. It returns nil when no such
// round exists.
func (s *Store) RoundByID(roundID string) (*RoundRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+roundColumns+` FROM rounds WHERE round_id = ?`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	recs, err := scanRounds(rows)
	if err != nil || len(recs) == 0 {
		return nil, err
	}
	return &recs[0], nil
}

func scanRounds(rows *sql.Rows) ([]RoundRecord, error) {
	defer rows.Close()

	var recs []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var meanMs, bestMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RoundID,
			&r.Player,
			&r.GameID,
			&r.Mode,
			&r.Score,
			&r.Total,
			&r.Accuracy,
			&r.SecsPerAnswer,
			&meanMs,
			&bestMs,
			&r.RoundSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.MeanReaction = time.Duration(meanMs) * time.Millisecond
		r.BestReaction = time.Duration(bestMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		recs = append(recs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// BestScore returns the highest score for mode.
// Returns 0 if no rounds exist.
func (s *Store) BestScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM rounds WHERE mode = ?",
		mode,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearRounds deletes all rounds for mode, or every round when mode is empty.
// It returns the number of deleted rounds.
func (s *Store) ClearRounds(mode string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM rounds WHERE ? = '' OR mode = ?", mode, mode)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared rounds: %w", err)
	}
	return n, nil
}

const statsColumns = `mode, COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(AVG(accuracy), 0), COALESCE(SUM(total), 0),
	COALESCE(MIN(NULLIF(best_reaction_ms, 0)), 0), MAX(created_at)`

// GetModeStats retrieves aggregated statistics for mode. A mode that was
// never played returns zero stats.
func (s *Store) GetModeStats(mode string) (*ModeStats, error) {
	row := s.db.QueryRow(
		`SELECT `+statsColumns+` FROM rounds WHERE mode = ? GROUP BY mode`,
		mode,
	)
	stats, err := scanStats(row)
	if errors.Is(err, sql.ErrNoRows) {
		return &ModeStats{Mode: mode}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	return stats, nil
}

// GetAllModeStats retrieves statistics for every mode that has been played.
func (s *Store) GetAllModeStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM rounds GROUP BY mode`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all mode stats: %w", err)
	}
	defer rows.Close()

	all := make(map[string]*ModeStats)
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		all[stats.Mode] = stats
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return all, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*ModeStats, error) {
	var st ModeStats
	var bestMs int64
	var lastPlayed any
	if err := row.Scan(
		&st.Mode,
		&st.Rounds,
		&st.BestScore,
		&st.AvgScore,
		&st.AvgAccuracy,
		&st.TotalAnswers,
		&bestMs,
		&lastPlayed,
	); err != nil {
		return nil, err
	}
	st.BestReaction = time.Duration(bestMs) * time.Millisecond
	st.LastPlayed = parseTime(lastPlayed)
	return &st, nil
}
