package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"ticklist/pkg/models"
)

// dbFileName is the default SQLite database file name.
const dbFileName = "ticklist.db"

// SQLiteGateway persists the task snapshot in a local SQLite
// database. Row position preserves collection order.
type SQLiteGateway struct {
	conn *sql.DB
	path string
}

// OpenSQLite opens the database at the given path, creating parent
// directories and applying migrations. An empty path uses
// ticklist.db in the default data directory.
func OpenSQLite(path string) (*SQLiteGateway, error) {
	if path == "" {
		path = filepath.Join(DefaultDataDir(), dbFileName)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	g := &SQLiteGateway{conn: conn, path: path}
	if err := g.migrate(); err != nil {
		conn.Close()
		return nil, err
	}
	return g, nil
}

// Close closes the database connection.
func (g *SQLiteGateway) Close() error {
	return g.conn.Close()
}

// Path returns the path to the database file.
func (g *SQLiteGateway) Path() string {
	return g.path
}

// migrate applies all pending schema migrations.
func (g *SQLiteGateway) migrate() error {
	_, err := g.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	var currentVersion int
	row := g.conn.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	migrations := []struct {
		version int
		sql     string
	}{
		{1, migrationV1Tasks},
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}

		tx, err := g.conn.Begin()
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration v%d: %w", m.version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration v%d: %w", m.version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration v%d: %w", m.version, err)
		}
	}

	return nil
}

const migrationV1Tasks = `
CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER PRIMARY KEY,
	id TEXT NOT NULL UNIQUE,
	title TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT '',
	due_date TEXT,
	completed INTEGER NOT NULL DEFAULT 0
);
`

// Load reads the persisted collection in stored order. Failures are
// logged and masked by returning an empty collection.
func (g *SQLiteGateway) Load() []models.Task {
	tasks, err := g.load()
	if err != nil {
		log.Printf("[storage] load tasks: %v", err)
		return nil
	}
	return tasks
}

// Save replaces the stored snapshot in a single transaction.
// Failures are logged and swallowed.
func (g *SQLiteGateway) Save(tasks []models.Task) {
	if err := g.save(tasks); err != nil {
		log.Printf("[storage] save tasks: %v", err)
	}
}

func (g *SQLiteGateway) load() ([]models.Task, error) {
	rows, err := g.conn.Query(`
		SELECT id, title, details, due_date, completed
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var due sql.NullString
		var completed int
		if err := rows.Scan(&t.ID, &t.Title, &t.Details, &due, &completed); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if due.Valid {
			parsed, err := time.Parse(time.RFC3339, due.String)
			if err != nil {
				return nil, fmt.Errorf("parse due date for task %s: %w", t.ID, err)
			}
			t.DueDate = &parsed
		}
		t.Completed = completed != 0
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

func (g *SQLiteGateway) save(tasks []models.Task) error {
	tx, err := g.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear tasks: %w", err)
	}

	for i, t := range tasks {
		var due any
		if t.DueDate != nil {
			due = t.DueDate.UTC().Format(time.RFC3339)
		}
		completed := 0
		if t.Completed {
			completed = 1
		}
		_, err := tx.Exec(`
			INSERT INTO tasks (position, id, title, details, due_date, completed)
			VALUES (?, ?, ?, ?, ?, ?)
		`, i, t.ID, t.Title, t.Details, due, completed)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert task %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
