package characters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/rhydlewis/adventurer-rpg-sub002/internal/clock"
	"github.com/rhydlewis/adventurer-rpg-sub002/internal/domain/character"
	rpgerr "github.com/rhydlewis/adventurer-rpg-sub002/internal/errors"
)

var _ Repository = (*SQLiteRepository)(nil)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS characters (
	id         TEXT PRIMARY KEY,
	data       TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SQLiteRepository persists characters as JSON rows in a SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// OpenSQLite opens (creating if needed) the database at path
func OpenSQLite(path string, c clock.Clock) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, rpgerr.InvalidArgument("sqlite path is required")
	}
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "create characters table")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create stores a new character
func (r *SQLiteRepository) Create(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	now := r.clock.Now()
	stored := char.Clone()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := json.Marshal(stored)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to marshal character")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO characters (id, data, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		char.ID, string(data), toMillis(now), toMillis(now),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return rpgerr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
				WithMeta("character_id", char.ID)
		}
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to create character")
	}

	char.CreatedAt = now
	char.UpdatedAt = now
	return nil
}

// Get retrieves a character by ID
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT data, created_at, updated_at FROM characters WHERE id = ?`, id)

	char, err := scanCharacter(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, err
	}
	return char, nil
}

// Update replaces an existing character
func (r *SQLiteRepository) Update(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	existing, err := r.Get(ctx, char.ID)
	if err != nil {
		return err
	}

	stored := char.Clone()
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(stored)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to marshal character")
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE characters SET data = ?, updated_at = ? WHERE id = ?`,
		string(data), toMillis(stored.UpdatedAt), char.ID,
	)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to update character")
	}

	char.CreatedAt = stored.CreatedAt
	char.UpdatedAt = stored.UpdatedAt
	return nil
}

// Delete removes a character
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, id)
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to delete character")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to delete character")
	}
	if affected == 0 {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	return nil
}

// List returns every character ordered by creation time
func (r *SQLiteRepository) List(ctx context.Context) ([]*character.Character, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data, created_at, updated_at FROM characters ORDER BY created_at, id`)
	if err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to list characters")
	}
	defer rows.Close()

	var result []*character.Character
	for rows.Next() {
		char, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, char)
	}
	if err := rows.Err(); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to list characters")
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(s scanner) (*character.Character, error) {
	var (
		data               string
		createdAt, updated int64
	)
	if err := s.Scan(&data, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeUnavailable, "failed to read character")
	}

	var char character.Character
	if err := json.Unmarshal([]byte(data), &char); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "failed to unmarshal character")
	}
	char.CreatedAt = fromMillis(createdAt)
	char.UpdatedAt = fromMillis(updated)
	return &char, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
