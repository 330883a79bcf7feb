// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The whole list is stored in two tables:
//
//	tutors     - one row per tutor; position keeps the list order and
//	             student_id is UNIQUE, mirroring the in-memory rule
//	tutor_tags - one row per (tutor, tag) pair
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tuthub/tuthub/internal/tutor"
	"github.com/tuthub/tuthub/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db   *sql.DB
	path string
}

// New opens the SQLite database at path and creates the tables if they do
// not exist yet.
func New(path string) (*SQLite, error) {
	// sql.Open only validates the driver name and DSN; the first real
	// connection happens on the first query.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent, so this runs on every start.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS tutors (
			position             INTEGER PRIMARY KEY,
			name                 TEXT NOT NULL,
			phone                TEXT NOT NULL,
			email                TEXT NOT NULL,
			module               TEXT NOT NULL,
			year                 TEXT NOT NULL,
			student_id           TEXT NOT NULL UNIQUE,
			comment              TEXT NOT NULL DEFAULT '',
			teaching_nominations TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS tutor_tags (
			student_id TEXT NOT NULL REFERENCES tutors (student_id) ON DELETE CASCADE,
			tag        TEXT NOT NULL,
			PRIMARY KEY (student_id, tag)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db, path: path}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// LoadTutors reads every tutor in position order, then attaches the tags.
//
// Rows are scanned into types.Tutor first and only then converted through
// the value-object constructors (ToTutor), so a hand-edited database with
// an invalid field is reported instead of silently loaded.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) LoadTutors() ([]tutor.Tutor, error) {
	records, err := s.loadRecords()
	if err != nil {
		return nil, err
	}
	if err := s.attachTags(records); err != nil {
		return nil, err
	}

	tutors, err := types.ToTutors(records)
	if err != nil {
		return nil, fmt.Errorf("LoadTutors: %w", err)
	}
	return tutors, nil
}

func (s *SQLite) loadRecords() ([]types.Tutor, error) {
	stmt, err := s.Db.Prepare(
		// Explicit column list so Scan's ordering never drifts.
		`SELECT name, phone, email, module, year, student_id, comment, teaching_nominations
		 FROM tutors ORDER BY position`,
	)
	if err != nil {
		return nil, fmt.Errorf("LoadTutors: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("LoadTutors: query: %w", err)
	}
	defer rows.Close()

	records := make([]types.Tutor, 0)
	for rows.Next() {
		var r types.Tutor
		if err := rows.Scan(
			&r.Name,
			&r.Phone,
			&r.Email,
			&r.Module,
			&r.Year,
			&r.StudentID,
			&r.Comment,
			&r.Nomination,
		); err != nil {
			return nil, fmt.Errorf("LoadTutors: scan row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadTutors: rows iteration: %w", err)
	}
	return records, nil
}

func (s *SQLite) attachTags(records []types.Tutor) error {
	rows, err := s.Db.Query("SELECT student_id, tag FROM tutor_tags ORDER BY student_id, tag")
	if err != nil {
		return fmt.Errorf("LoadTutors: query tags: %w", err)
	}
	defer rows.Close()

	byID := make(map[string][]string)
	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return fmt.Errorf("LoadTutors: scan tag: %w", err)
		}
		byID[id] = append(byID[id], tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("LoadTutors: tag iteration: %w", err)
	}

	for i := range records {
		records[i].Tags = byID[records[i].StudentID]
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// SaveTutors replaces the stored list in a single transaction.
//
// Either every row is written or, on any error, the deferred Rollback
// leaves the previous content in place. The two INSERT statements are
// prepared once on the transaction and reused for every tutor.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) SaveTutors(tutors []tutor.Tutor) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("SaveTutors: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tutor_tags"); err != nil {
		return fmt.Errorf("SaveTutors: clear tags: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM tutors"); err != nil {
		return fmt.Errorf("SaveTutors: clear tutors: %w", err)
	}

	insertTutor, err := tx.Prepare(
		`INSERT INTO tutors (position, name, phone, email, module, year, student_id, comment, teaching_nominations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("SaveTutors: prepare tutor: %w", err)
	}
	defer insertTutor.Close()

	insertTag, err := tx.Prepare("INSERT INTO tutor_tags (student_id, tag) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("SaveTutors: prepare tag: %w", err)
	}
	defer insertTag.Close()

	for i, t := range tutors {
		r := types.FromTutor(t)
		// Argument order matches the ? order in the SQL.
		if _, err := insertTutor.Exec(i, r.Name, r.Phone, r.Email, r.Module, r.Year,
			r.StudentID, r.Comment, r.Nomination); err != nil {
			return fmt.Errorf("SaveTutors: insert %s: %w", r.StudentID, err)
		}
		for _, tag := range r.Tags {
			if _, err := insertTag.Exec(r.StudentID, tag); err != nil {
				return fmt.Errorf("SaveTutors: insert tag %s: %w", tag, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SaveTutors: commit: %w", err)
	}
	return nil
}

// Backup writes a consistent copy of the database to
// <path>.<timestamp>.bak with VACUUM INTO, which refuses to overwrite an
// existing file.
func (s *SQLite) Backup() (string, error) {
	dst := fmt.Sprintf("%s.%s.bak", s.path, time.Now().UTC().Format("20060102T150405.000000000"))
	if _, err := s.Db.Exec("VACUUM INTO ?", dst); err != nil {
		return "", fmt.Errorf("Backup: vacuum into %s: %w", dst, err)
	}
	return dst, nil
}

// Close closes the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
