package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitrack/exercise-tracker/internal/model"
)

// LogsRepository is the PostgreSQL-backed Logs store. Log entries live in
// a JSONB array on the log row, keyed by the owning user's id.
type LogsRepository struct {
	pool *pgxpool.Pool
}

// NewLogsRepository constructs a LogsRepository.
func NewLogsRepository(pool *pgxpool.Pool) *LogsRepository {
	return &LogsRepository{pool: pool}
}

// Get resolves a log by the owning user's id.
func (r *LogsRepository) Get(ctx context.Context, id string) (*model.Log, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var (
		log model.Log
		raw []byte
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, count, entries FROM logs WHERE id = $1`,
		id,
	).Scan(&log.ID, &log.Username, &log.Count, &raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching log %s: %w", id, err)
	}

	if err := json.Unmarshal(raw, &log.Entries); err != nil {
		return nil, fmt.Errorf("decoding log entries for %s: %w", id, err)
	}

	return &log, nil
}

// Append adds one entry to the user's log in a single upsert: the first
// exercise creates the log with count 1, later exercises concatenate onto
// the entries array and increment count. Because it is one statement,
// concurrent appends for the same user serialize at the row and the
// count == len(entries) invariant holds.
func (r *LogsRepository) Append(ctx context.Context, userID, username string, entry model.LogEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding log entry: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO logs (id, username, count, entries)
		 VALUES ($1, $2, 1, jsonb_build_array($3::jsonb))
		 ON CONFLICT (id) DO UPDATE
		 SET entries = logs.entries || excluded.entries,
		     count = logs.count + 1,
		     updated_at = now()`,
		userID, username, raw,
	)
	if err != nil {
		return fmt.Errorf("appending log entry for %s: %w", userID, err)
	}

	return nil
}
