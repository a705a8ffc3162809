package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const historyFileName = "history.db"

// Outcome describes how a brew ended.
type Outcome string

const (
	OutcomeFinished Outcome = "finished"
	OutcomeCleared  Outcome = "cleared"
)

// Brew is one completed or abandoned countdown.
type Brew struct {
	ID      string
	Total   time.Duration
	Elapsed time.Duration
	Outcome Outcome
	EndedAt time.Time
}

// History stores brews in sqlite.
type History struct {
	db *sql.DB
}

// OpenHistory opens the history database in the application config dir.
func OpenHistory(ctx context.Context, appName string) (*History, error) {
	dbPath, err := resolveConfigPath(appName, historyFileName)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create config directory: %w", err)
	}
	return OpenHistoryFile(ctx, dbPath)
}

// OpenHistoryFile opens (creating if needed) a history database at dsn.
func OpenHistoryFile(ctx context.Context, dsn string) (*History, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history db: %w", err)
	}

	history := &History{db: db}
	if err := history.initTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return history, nil
}

func (history *History) initTables(ctx context.Context) error {
	_, err := history.db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS brews (
            id TEXT PRIMARY KEY,
            total_ms INTEGER NOT NULL,
            elapsed_ms INTEGER NOT NULL,
            outcome TEXT NOT NULL,
            ended_at INTEGER NOT NULL
        )
    `)
	if err != nil {
		return fmt.Errorf("create brews table: %w", err)
	}
	return nil
}

// Record stores a brew, assigning an ID when it has none.
func (history *History) Record(ctx context.Context, brew Brew) (Brew, error) {
	if brew.ID == "" {
		brew.ID = uuid.NewString()
	}
	if brew.EndedAt.IsZero() {
		brew.EndedAt = time.Now()
	}

	_, err := history.db.ExecContext(ctx,
		`INSERT INTO brews (id, total_ms, elapsed_ms, outcome, ended_at) VALUES (?, ?, ?, ?, ?)`,
		brew.ID, brew.Total.Milliseconds(), brew.Elapsed.Milliseconds(), string(brew.Outcome), brew.EndedAt.UnixMilli(),
	)
	if err != nil {
		return brew, fmt.Errorf("insert brew: %w", err)
	}
	return brew, nil
}

// Recent returns up to limit brews, newest first.
func (history *History) Recent(ctx context.Context, limit int) ([]Brew, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := history.db.QueryContext(ctx,
		`SELECT id, total_ms, elapsed_ms, outcome, ended_at FROM brews ORDER BY ended_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query brews: %w", err)
	}
	defer rows.Close()

	var brews []Brew
	for rows.Next() {
		var (
			brew      Brew
			totalMs   int64
			elapsedMs int64
			outcome   string
			endedAtMs int64
		)
		if err := rows.Scan(&brew.ID, &totalMs, &elapsedMs, &outcome, &endedAtMs); err != nil {
			return nil, fmt.Errorf("scan brew: %w", err)
		}
		brew.Total = time.Duration(totalMs) * time.Millisecond
		brew.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		brew.Outcome = Outcome(outcome)
		brew.EndedAt = time.UnixMilli(endedAtMs)
		brews = append(brews, brew)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brews: %w", err)
	}
	return brews, nil
}

// Close releases the database.
func (history *History) Close() error {
	return history.db.Close()
}
