package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"taskmaster/models"
	"taskmaster/types"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	description TEXT    NOT NULL,
	completed   INTEGER NOT NULL DEFAULT 0,
	priority    TEXT    NOT NULL DEFAULT 'medium'
);`

// SQLiteTaskStore persists the task list in a local SQLite database. List
// order is the position column; every save rewrites the table inside one
// transaction, which gives the same all-or-nothing behavior as the file
// backend's temp-and-rename.
type SQLiteTaskStore struct {
	taskList
	dbPath string
	db     *sql.DB
}

// NewSQLiteTaskStore opens (creating if needed) the database at dbPath and
// ensures the schema exists.
func NewSQLiteTaskStore(dbPath string) (*SQLiteTaskStore, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &types.PersistenceError{Op: "load", Path: dbPath, Err: err}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, &types.PersistenceError{Op: "load", Path: dbPath, Err: err}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, &types.PersistenceError{Op: "load", Path: dbPath, Err: err}
	}

	return &SQLiteTaskStore{dbPath: dbPath, db: db}, nil
}

// Path returns the database file path.
func (s *SQLiteTaskStore) Path() string {
	return s.dbPath
}

// Load reads all tasks in position order.
func (s *SQLiteTaskStore) Load() error {
	rows, err := s.db.Query(`SELECT description, completed, priority FROM tasks ORDER BY position`)
	if err != nil {
		return &types.PersistenceError{Op: "load", Path: s.dbPath, Err: err}
	}
	defer func() { _ = rows.Close() }()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var completed int
		var priority string
		if err := rows.Scan(&t.Description, &completed, &priority); err != nil {
			return &types.PersistenceError{Op: "load", Path: s.dbPath, Err: err}
		}
		t.Completed = completed != 0
		t.Priority = models.Priority(priority)
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return &types.PersistenceError{Op: "load", Path: s.dbPath, Err: err}
	}

	tasks, err = normalizeLoaded(tasks)
	if err != nil {
		return &types.PersistenceError{Op: "load", Path: s.dbPath, Err: err}
	}
	s.replace(tasks)
	return nil
}

// Save rewrites the tasks table from the in-memory list.
func (s *SQLiteTaskStore) Save() error {
	tx, err := s.db.Begin()
	if err != nil {
		return &types.PersistenceError{Op: "save", Path: s.dbPath, Err: err}
	}

	save := func() error {
		if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
			return err
		}
		stmt, err := tx.Prepare(`INSERT INTO tasks (position, description, completed, priority) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() { _ = stmt.Close() }()
		for i, t := range s.tasks {
			completed := 0
			if t.Completed {
				completed = 1
			}
			if _, err := stmt.Exec(i+1, t.Description, completed, string(t.Priority)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := save(); err != nil {
		_ = tx.Rollback()
		return &types.PersistenceError{Op: "save", Path: s.dbPath, Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &types.PersistenceError{Op: "save", Path: s.dbPath, Err: fmt.Errorf("commit: %w", err)}
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteTaskStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
