package metrics

import (
	"time"

	"student-management-api/internal/storage"
	"student-management-api/internal/types"
)

// InstrumentedStorage decorates a storage.Storage so every operation
// is timed and counted. It satisfies the same interface, so handlers
// are unaware of it.
type InstrumentedStorage struct {
	inner   storage.Storage
	metrics *Metrics
}

// InstrumentStorage wraps store with operation metrics.
func InstrumentStorage(store storage.Storage, m *Metrics) *InstrumentedStorage {
	return &InstrumentedStorage{inner: store, metrics: m}
}

func (s *InstrumentedStorage) CreateStudent(input types.StudentInput) (types.Student, error) {
	start := time.Now()
	student, err := s.inner.CreateStudent(input)
	s.metrics.RecordStoreOperation("create", err == nil, time.Since(start))
	return student, err
}

func (s *InstrumentedStorage) ListStudents() ([]types.Student, error) {
	start := time.Now()
	students, err := s.inner.ListStudents()
	s.metrics.RecordStoreOperation("list", err == nil, time.Since(start))
	return students, err
}

func (s *InstrumentedStorage) GetStudentByID(id int64) (types.Student, error) {
	start := time.Now()
	student, err := s.inner.GetStudentByID(id)
	s.metrics.RecordStoreOperation("get", err == nil, time.Since(start))
	return student, err
}

func (s *InstrumentedStorage) UpdateStudentByID(id int64, input types.StudentInput) (types.Student, error) {
	start := time.Now()
	student, err := s.inner.UpdateStudentByID(id, input)
	s.metrics.RecordStoreOperation("update", err == nil, time.Since(start))
	return student, err
}

func (s *InstrumentedStorage) DeleteStudentByID(id int64) (types.Student, error) {
	start := time.Now()
	student, err := s.inner.DeleteStudentByID(id)
	s.metrics.RecordStoreOperation("delete", err == nil, time.Since(start))
	return student, err
}

func (s *InstrumentedStorage) Ping() error {
	return s.inner.Ping()
}
