package memory

import (
	"sync"
	"time"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// CourseRepository implements course.Repository on top of a slice.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []*course.Course
}

// NewCourseRepository creates an empty CourseRepository.
func NewCourseRepository() *CourseRepository {
	return &CourseRepository{courses: make([]*course.Course, 0)}
}

var _ course.Repository = (*CourseRepository)(nil)

// Save appends a course whose id is not stored yet.
func (r *CourseRepository) Save(c *course.Course) (*course.Course, error) {
	if c == nil {
		return nil, shared.ErrNilCourse
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if course.IndexOf(r.courses, c) >= 0 {
		return nil, shared.ErrCourseAlreadyExists
	}

	r.courses = append(r.courses, c)
	return c, nil
}

// FindByID returns the course with the given id, or nil when absent.
func (r *CourseRepository) FindByID(id int) (*course.Course, error) {
	if id <= 0 {
		return nil, shared.ErrInvalidCourseID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.courses {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, nil
}

// FindByName returns every course whose name equals name case-insensitively.
// Substrings do not match.
func (r *CourseRepository) FindByName(name string) ([]*course.Course, error) {
	if shared.IsBlank(name) {
		return nil, shared.Invalid("course", "FindByName", "name cannot be empty")
	}

	return r.filter(func(c *course.Course) bool { return c.HasName(name) }), nil
}

// FindByDate returns every course starting on the same calendar day as date.
func (r *CourseRepository) FindByDate(date time.Time) ([]*course.Course, error) {
	if date.IsZero() {
		return nil, shared.Invalid("course", "FindByDate", "date cannot be empty")
	}

	return r.filter(func(c *course.Course) bool { return c.StartsOn(date) }), nil
}

// FindAll returns a snapshot of all courses in insertion order.
func (r *CourseRepository) FindAll() []*course.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*course.Course, len(r.courses))
	copy(result, r.courses)
	return result
}

// Delete removes the course with the same id and reports whether it was stored.
func (r *CourseRepository) Delete(c *course.Course) (bool, error) {
	if c == nil {
		return false, shared.ErrNilCourse
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := course.IndexOf(r.courses, c)
	if i < 0 {
		return false, nil
	}
	r.courses = append(r.courses[:i:i], r.courses[i+1:]...)
	return true, nil
}

// Count returns the number of stored courses.
func (r *CourseRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.courses)
}

func (r *CourseRepository) filter(match func(*course.Course) bool) []*course.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*course.Course, 0)
	for _, c := range r.courses {
		if match(c) {
			result = append(result, c)
		}
	}
	return result
}
