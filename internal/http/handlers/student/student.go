// Package student contains the HTTP handlers for the student
// resource.
//
// Each exported function is a factory: it takes the Storage dependency
// once at route-registration time and returns the http.HandlerFunc
// that runs per request. The inner function closes over the storage
// handle, which is how dependencies reach handlers without globals.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"student-management-api/internal/storage"
	"student-management-api/internal/types"
	"student-management-api/internal/utils/response"

	"github.com/go-playground/validator/v10"
)

// Fixed message strings that are part of the public API contract.
const (
	MsgNotFound = "Student not found"
	MsgDeleted  = "Student deleted successfully"
)

// DeleteResponse is the confirmation envelope for DELETE, echoing the
// removed record.
type DeleteResponse struct {
	Message        string        `json:"message"`
	DeletedStudent types.Student `json:"deleted_student"`
}

// decodeInput reads and validates a write-shape body. It returns false
// after writing the error response itself, so callers just return.
func decodeInput(w http.ResponseWriter, r *http.Request) (types.StudentInput, bool) {
	var input types.StudentInput

	err := json.NewDecoder(r.Body).Decode(&input)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusUnprocessableEntity,
			response.GeneralError(errors.New("request body is empty")))
		return input, false
	}
	if err != nil {
		// Malformed JSON or a wrong primitive type for a field.
		response.WriteJSON(w, http.StatusUnprocessableEntity,
			response.GeneralError(err))
		return input, false
	}

	if err := validator.New().Struct(input); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		response.WriteJSON(w, http.StatusUnprocessableEntity,
			response.ValidationError(validateErrs))
		return input, false
	}

	return input, true
}

// parseID converts the {id} path segment to int64, writing a 400 and
// returning false when it is not an integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		response.WriteJSON(w, http.StatusBadRequest,
			response.GeneralError(errors.New("invalid id: must be an integer")))
		return 0, false
	}
	return id, true
}

// New handles POST /students/.
// Creates a student from the JSON body and returns the full record,
// including the assigned id, with status 201.
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		input, ok := decodeInput(w, r)
		if !ok {
			return
		}

		student, err := store.CreateStudent(input)
		if err != nil {
			slog.Error("error creating student", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.Int64("id", student.ID))
		response.WriteJSON(w, http.StatusCreated, student)
	}
}

// GetList handles GET /students/.
// Returns a JSON array of all students; [] (not null) when empty.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.ListStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// GetByID handles GET /students/{id}.
// Returns the record with status 200, or 404 when no record has the
// given id.
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("getting a student", slog.Int64("id", id))

		student, err := store.GetStudentByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.NotFound(MsgNotFound))
				return
			}
			slog.Error("error getting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// Update handles PUT /students/{id}.
// Replaces all four data fields of an existing student and returns the
// new state; there is no partial-field update.
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("updating a student", slog.Int64("id", id))

		input, ok := decodeInput(w, r)
		if !ok {
			return
		}

		updated, err := store.UpdateStudentByID(id, input)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.NotFound(MsgNotFound))
				return
			}
			slog.Error("error updating student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student updated", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// Delete handles DELETE /students/{id}.
// Removes the record and returns a confirmation containing its
// last-known value. A repeated delete of the same id returns 404.
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}
		slog.Info("deleting a student", slog.Int64("id", id))

		deleted, err := store.DeleteStudentByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrStudentNotFound) {
				response.WriteJSON(w, http.StatusNotFound,
					response.NotFound(MsgNotFound))
				return
			}
			slog.Error("error deleting student",
				slog.Int64("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student deleted", slog.Int64("id", id))
		response.WriteJSON(w, http.StatusOK, DeleteResponse{
			Message:        MsgDeleted,
			DeletedStudent: deleted,
		})
	}
}
