// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql.
//
// SQLite keeps everything in a single file on disk: no server process,
// no network, nothing to install beyond the driver. The blank import
// below registers the "sqlite3" driver with database/sql as a side
// effect of package initialisation.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"student-management-api/internal/config"
	"student-management-api/internal/storage"
	"student-management-api/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite implements storage.Storage over a *sql.DB connection pool.
// A single *sql.DB is safe for concurrent use; SQLite's own locking
// serialises writers underneath it.
type SQLite struct {
	Db *sql.DB
}

// New opens the database file at cfg.StoragePath and creates the
// students table if it does not already exist. CREATE TABLE IF NOT
// EXISTS is idempotent, so running it on every startup is safe.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			name   TEXT    NOT NULL,
			email  TEXT    NOT NULL,
			age    INTEGER NOT NULL,
			course TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// Ping verifies the database file is still reachable.
func (s *SQLite) Ping() error {
	return s.Db.Ping()
}

// CreateStudent inserts a new row and returns the stored record with
// its auto-generated primary key. Placeholders keep user input out of
// the SQL text entirely.
func (s *SQLite) CreateStudent(input types.StudentInput) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (name, email, age, course) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(input.Name, input.Email, input.Age, input.Course)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	return types.Student{
		ID:     lastID,
		Name:   input.Name,
		Email:  input.Email,
		Age:    input.Age,
		Course: input.Course,
	}, nil
}

// GetStudentByID fetches exactly one row by primary key. The variables
// passed to Scan must match the SELECT column order.
func (s *SQLite) GetStudentByID(id int64) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, age, course FROM students WHERE id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("GetStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	var student types.Student
	err = stmt.QueryRow(id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Age,
		&student.Course,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Student{}, storage.ErrStudentNotFound
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// ListStudents returns all rows. Columns are listed explicitly —
// SELECT * would silently break Scan ordering if the schema grew.
func (s *SQLite) ListStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, age, course FROM students",
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Age,
			&student.Course,
		); err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}

	return students, nil
}

// UpdateStudentByID replaces all four data fields of an existing row
// and returns the stored state. The existence check runs first so an
// absent id surfaces as storage.ErrStudentNotFound rather than a
// silent zero-row update.
func (s *SQLite) UpdateStudentByID(id int64, input types.StudentInput) (types.Student, error) {
	if _, err := s.GetStudentByID(id); err != nil {
		return types.Student{}, err
	}

	stmt, err := s.Db.Prepare(
		"UPDATE students SET name = ?, email = ?, age = ?, course = ? WHERE id = ?",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(input.Name, input.Email, input.Age, input.Course, id)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	// Re-fetch so the caller gets exactly what the database holds.
	return s.GetStudentByID(id)
}

// DeleteStudentByID removes a row and returns its last-known value so
// the handler can echo it back in the delete confirmation.
func (s *SQLite) DeleteStudentByID(id int64) (types.Student, error) {
	student, err := s.GetStudentByID(id)
	if err != nil {
		return types.Student{}, err
	}

	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return types.Student{}, fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	if _, err := stmt.Exec(id); err != nil {
		return types.Student{}, fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	return student, nil
}
