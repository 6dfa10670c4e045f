// Package store keeps named snapshots of a settings tree in SQLite. A
// snapshot is the flattened leaf list of a menu view: one row per leaf
// path, written atomically and restored by replaying the rows through
// the same menu contract that produced them.
package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/robbiew/menucfg/internal/menu"
)

// Store wraps the snapshot database.
type Store struct {
	db   *sql.DB
	path string
}

// Row is one persisted leaf: its path from the root, its display value,
// and its kind tag.
type Row struct {
	Path  string
	Value string
	Type  string
}

// Snapshot is the listing entry for one named snapshot.
type Snapshot struct {
	Name      string
	CreatedAt string
	Fields    int
}

// Open opens or creates the snapshot database and ensures its schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database at path '%s': %w", path, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database at path '%s': %w", path, err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) initSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshots: %w", err)
	}

	_, err = tx.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot_values (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL,
			path TEXT NOT NULL,
			value TEXT NOT NULL,
			value_type TEXT NOT NULL,
			FOREIGN KEY (snapshot_id) REFERENCES snapshots(id) ON DELETE CASCADE,
			UNIQUE(snapshot_id, path)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create snapshot_values: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_snapshot_values_snapshot_id
					  ON snapshot_values(snapshot_id)`)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the view's leaves under the given name, replacing any
// snapshot with the same name. Absent optional fields are represented
// by their absence: restoring onto a zero record leaves them unset.
func (s *Store) Save(name string, view menu.Describable) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO snapshots (name) VALUES (?)
		ON CONFLICT(name) DO UPDATE SET created_at = CURRENT_TIMESTAMP
	`, name)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	var id int64
	if err := tx.QueryRow(`SELECT id FROM snapshots WHERE name = ?`, name).Scan(&id); err != nil {
		return fmt.Errorf("failed to resolve snapshot id: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM snapshot_values WHERE snapshot_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear previous values: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO snapshot_values (snapshot_id, path, value, value_type)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	err = menu.Walk(view, func(path string, d menu.FieldDescriptor) error {
		if d.Kind.Kind == menu.KindOptional && d.Value == menu.Placeholder {
			return nil
		}
		_, err := stmt.Exec(id, path, d.Value, d.Kind.String())
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to store values: %w", err)
	}

	return tx.Commit()
}

// Load returns the rows of a named snapshot in the order they were
// written, which is the walk order of the tree they came from.
func (s *Store) Load(name string) ([]Row, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM snapshots WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("snapshot not found: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up snapshot: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT path, value, value_type FROM snapshot_values
		WHERE snapshot_id = ?
		ORDER BY id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot values: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Path, &r.Value, &r.Type); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot value: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// List returns every snapshot with its creation time and leaf count,
// ordered by name.
func (s *Store) List() ([]Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT s.name, s.created_at, COUNT(v.id)
		FROM snapshots s
		LEFT JOIN snapshot_values v ON v.snapshot_id = s.id
		GROUP BY s.id
		ORDER BY s.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var sn Snapshot
		if err := rows.Scan(&sn.Name, &sn.CreatedAt, &sn.Fields); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		out = append(out, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes a named snapshot and its values.
func (s *Store) Delete(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRow(`SELECT id FROM snapshots WHERE name = ?`, name).Scan(&id)
	if err == sql.ErrNoRows {
		return fmt.Errorf("snapshot not found: %s", name)
	}
	if err != nil {
		return fmt.Errorf("failed to look up snapshot: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM snapshot_values WHERE snapshot_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete snapshot values: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM snapshots WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return tx.Commit()
}
