package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBName = "truco_history.db"

// Store persists settled deals to a local sqlite database. It is the
// training corpus for the case-based oracle, so reads are bulk loads
// rather than point lookups.
type Store struct {
	db *sql.DB
}

func OpenFromEnv() (*Store, error) {
	dbPath := strings.TrimSpace(os.Getenv("TRUCO_DB"))
	if dbPath == "" {
		userConfigDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(userConfigDir, "truco-lite", defaultDBName)
	}
	return Open(dbPath)
}

func Open(dbPath string) (*Store, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("empty sqlite database path")
	}
	if dbPath != ":memory:" {
		parent := filepath.Dir(dbPath)
		if parent != "" && parent != "." {
			if err := os.MkdirAll(parent, 0o755); err != nil {
				return nil, err
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Append(ctx context.Context, rec HandRecord) error {
	if strings.TrimSpace(rec.MatchID) == "" {
		return fmt.Errorf("record without match id")
	}
	if rec.PlayedAt.IsZero() {
		rec.PlayedAt = time.Now().UTC()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	_, err := s.db.ExecContext(ctx, `
INSERT INTO hand_history (
    match_id, deal_no, mao_id,
    envido_kind, envido_asker, envido_winner, envido_stake, envido1, envido2,
    flor_stage, flor_winner, flor_stake,
    truco_stage, truco_asker, truco_stake, truco_winner,
    trick1, trick2, trick3,
    hand_winner, quality1, quality2, score1, score2,
    played_at_ms
)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		rec.MatchID, rec.DealNo, rec.MaoID,
		rec.EnvidoKind, rec.EnvidoAsker, rec.EnvidoWinner, rec.EnvidoStake, rec.Envido1, rec.Envido2,
		rec.FlorStage, rec.FlorWinner, rec.FlorStake,
		rec.TrucoStage, rec.TrucoAsker, rec.TrucoStake, rec.TrucoWinner,
		rec.Trick1, rec.Trick2, rec.Trick3,
		rec.HandWinner, rec.Quality1, rec.Quality2, rec.Score1, rec.Score2,
		rec.PlayedAt.UTC().UnixMilli(),
	)
	return err
}

// LoadRecords returns up to limit most recent deals, newest first. A
// non-positive limit loads everything.
func (s *Store) LoadRecords(ctx context.Context, limit int) ([]HandRecord, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT id, match_id, deal_no, mao_id,
       envido_kind, envido_asker, envido_winner, envido_stake, envido1, envido2,
       flor_stage, flor_winner, flor_stake,
       truco_stage, truco_asker, truco_stake, truco_winner,
       trick1, trick2, trick3,
       hand_winner, quality1, quality2, score1, score2,
       played_at_ms
FROM hand_history
ORDER BY id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []HandRecord
	for rows.Next() {
		var rec HandRecord
		var playedAtMs int64
		if err := rows.Scan(
			&rec.ID, &rec.MatchID, &rec.DealNo, &rec.MaoID,
			&rec.EnvidoKind, &rec.EnvidoAsker, &rec.EnvidoWinner, &rec.EnvidoStake, &rec.Envido1, &rec.Envido2,
			&rec.FlorStage, &rec.FlorWinner, &rec.FlorStake,
			&rec.TrucoStage, &rec.TrucoAsker, &rec.TrucoStake, &rec.TrucoWinner,
			&rec.Trick1, &rec.Trick2, &rec.Trick3,
			&rec.HandWinner, &rec.Quality1, &rec.Quality2, &rec.Score1, &rec.Score2,
			&playedAtMs,
		); err != nil {
			return nil, err
		}
		rec.PlayedAt = time.UnixMilli(playedAtMs).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`
CREATE TABLE IF NOT EXISTS hand_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    match_id TEXT NOT NULL,
    deal_no INTEGER NOT NULL,
    mao_id INTEGER NOT NULL,
    envido_kind INTEGER NOT NULL DEFAULT 0,
    envido_asker INTEGER NOT NULL DEFAULT 0,
    envido_winner INTEGER NOT NULL DEFAULT 0,
    envido_stake INTEGER NOT NULL DEFAULT 0,
    envido1 INTEGER NOT NULL DEFAULT 0,
    envido2 INTEGER NOT NULL DEFAULT 0,
    flor_stage INTEGER NOT NULL DEFAULT 0,
    flor_winner INTEGER NOT NULL DEFAULT 0,
    flor_stake INTEGER NOT NULL DEFAULT 0,
    truco_stage INTEGER NOT NULL DEFAULT 0,
    truco_asker INTEGER NOT NULL DEFAULT 0,
    truco_stake INTEGER NOT NULL DEFAULT 1,
    truco_winner INTEGER NOT NULL DEFAULT 0,
    trick1 INTEGER NOT NULL DEFAULT 0,
    trick2 INTEGER NOT NULL DEFAULT 0,
    trick3 INTEGER NOT NULL DEFAULT 0,
    hand_winner INTEGER NOT NULL DEFAULT 0,
    quality1 REAL NOT NULL DEFAULT 0,
    quality2 REAL NOT NULL DEFAULT 0,
    score1 INTEGER NOT NULL DEFAULT 0,
    score2 INTEGER NOT NULL DEFAULT 0,
    played_at_ms INTEGER NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_hand_history_match ON hand_history(match_id, deal_no)`,
		`CREATE INDEX IF NOT EXISTS idx_hand_history_played_at ON hand_history(played_at_ms)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
