// Package storage defines the Storage interface — the contract any
// database backend must satisfy to serve this application.
//
// Handlers depend only on this interface, so swapping the backend means
// implementing these methods and changing one line in main. Tests pass
// a fake instead of a real database.
package storage

import (
	"errors"

	"student-management-api/internal/types"
)

// ErrStudentNotFound is returned by Get/Update/Delete when no record
// exists for the given id. It is the only domain-level failure;
// handlers map it to a 404. Check with errors.Is.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the database contract.
type Storage interface {
	// CreateStudent inserts a new record and returns it with the
	// store-assigned id.
	CreateStudent(input types.StudentInput) (types.Student, error)

	// ListStudents returns every record in the store. It returns an
	// empty (non-nil) slice when the store is empty.
	ListStudents() ([]types.Student, error)

	// GetStudentByID fetches a single record by primary key.
	// Returns ErrStudentNotFound when no record has that id.
	GetStudentByID(id int64) (types.Student, error)

	// UpdateStudentByID replaces all four data fields of an existing
	// record and returns the new state. Returns ErrStudentNotFound
	// when no record has that id.
	UpdateStudentByID(id int64, input types.StudentInput) (types.Student, error)

	// DeleteStudentByID removes a record and returns its last-known
	// value. Returns ErrStudentNotFound when no record has that id;
	// a second delete of the same id therefore fails.
	DeleteStudentByID(id int64) (types.Student, error)

	// Ping reports whether the underlying store is reachable.
	Ping() error
}
