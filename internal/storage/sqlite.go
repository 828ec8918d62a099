// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The store is a history log: it records every finished game with its seed
// and moves so games can be listed and replayed. Nothing read from it feeds
// back into a running game.
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

	"github.com/vovakirdan/block-blast/internal/core"
)

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameEntry represents a single recorded game.
type GameEntry struct {
	ID        string
	GameID    string
	Seed      int64
	Score     int
	Moves     int
	Lines     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	LastPlayed time.Time
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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			score INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_game_id ON games(game_id);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS moves (
			game TEXT NOT NULL REFERENCES games(id),
			seq INTEGER NOT NULL,
			slot INTEGER NOT NULL,
			board_row INTEGER NOT NULL,
			board_col INTEGER NOT NULL,
			PRIMARY KEY (game, seq)
		);
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

// SaveGame records a finished game and its moves in one transaction.
// Returns the generated record ID.
func (s *Store) SaveGame(gameID string, rec core.GameRecord) (string, error) {
	id := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec(
		"INSERT INTO games (id, game_id, seed, score, moves, lines) VALUES (?, ?, ?, ?, ?, ?)",
		id, gameID, rec.Seed, rec.Score, len(rec.Moves), rec.Lines,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO moves (game, seq, slot, board_row, board_col) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", fmt.Errorf("storage: cannot prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range rec.Moves {
		if _, err := stmt.Exec(id, i, m.Slot, m.Row, m.Col); err != nil {
			return "", fmt.Errorf("storage: cannot save move %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

// TopGames retrieves the top N games by score for the given game ID.
func (s *Store) TopGames(gameID string, limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, game_id, seed, score, moves, lines, created_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// RecentGames retrieves the most recently finished games, newest first.
func (s *Store) RecentGames(gameID string, limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, game_id, seed, score, moves, lines, created_at
		 FROM games
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Seed, &e.Score, &e.Moves, &e.Lines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GameByID retrieves a recorded game. Returns nil, nil if it does not exist.
func (s *Store) GameByID(id string) (*GameEntry, error) {
	var e GameEntry
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, score, moves, lines, created_at
		 FROM games
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.GameID, &e.Seed, &e.Score, &e.Moves, &e.Lines, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}

// Moves returns the recorded moves of a game in play order.
func (s *Store) Moves(id string) ([]core.MoveRecord, error) {
	rows, err := s.db.Query(
		"SELECT slot, board_row, board_col FROM moves WHERE game = ? ORDER BY seq",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var moves []core.MoveRecord
	for rows.Next() {
		var m core.MoveRecord
		if err := rows.Scan(&m.Slot, &m.Row, &m.Col); err != nil {
			return nil, fmt.Errorf("storage: cannot scan move: %w", err)
		}
		moves = append(moves, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return moves, nil
}

// ClearGames deletes all recorded games and their moves for the given game ID.
func (s *Store) ClearGames(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM moves WHERE game IN (SELECT id FROM games WHERE game_id = ?)", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear moves: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM games WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific game ID.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM games WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
