// Package memory implements the in-memory persistence layer of the registry.
// Collections are insertion-ordered slices scanned linearly; the registry only
// ever holds a handful of records per session.
package memory

import (
	"sync"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository on top of a slice.
type StudentRepository struct {
	mu       sync.RWMutex
	students []*student.Student
}

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make([]*student.Student, 0)}
}

var _ student.Repository = (*StudentRepository)(nil)

// Save appends a student. The id and the email (case-insensitive) must both be unused.
func (r *StudentRepository) Save(s *student.Student) (*student.Student, error) {
	if s == nil {
		return nil, shared.ErrNilStudent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.students {
		if existing.Equals(s) {
			return nil, shared.ErrStudentAlreadyExists
		}
	}
	for _, existing := range r.students {
		if existing.HasEmail(s.Email()) {
			return nil, shared.ErrStudentEmailTaken
		}
	}

	r.students = append(r.students, s)
	return s, nil
}

// FindByID returns the student with the given id, or nil when absent.
func (r *StudentRepository) FindByID(id int) (*student.Student, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidStudentID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.ID() == id {
			return s, nil
		}
	}
	return nil, nil
}

// FindByEmail returns the first student whose email matches case-insensitively,
// or nil when absent.
func (r *StudentRepository) FindByEmail(email string) (*student.Student, error) {
	if shared.IsBlank(email) {
		return nil, shared.Invalid("student", "FindByEmail", "email cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.students {
		if s.HasEmail(email) {
			return s, nil
		}
	}
	return nil, nil
}

// FindByName returns every student whose name equals name case-insensitively.
func (r *StudentRepository) FindByName(name string) ([]*student.Student, error) {
	if shared.IsBlank(name) {
		return nil, shared.Invalid("student", "FindByName", "name cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*student.Student, 0)
	for _, s := range r.students {
		if s.HasName(name) {
			result = append(result, s)
		}
	}
	return result, nil
}

// FindAll returns a snapshot of all students in insertion order.
func (r *StudentRepository) FindAll() []*student.Student {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*student.Student, len(r.students))
	copy(result, r.students)
	return result
}

// Delete removes the student with the same id and reports whether it was stored.
func (r *StudentRepository) Delete(s *student.Student) (bool, error) {
	if s == nil {
		return false, shared.ErrNilStudent
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := student.IndexOf(r.students, s)
	if i < 0 {
		return false, nil
	}
	r.students = append(r.students[:i:i], r.students[i+1:]...)
	return true, nil
}

// Count returns the number of stored students.
func (r *StudentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.students)
}
