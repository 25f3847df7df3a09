package command

import (
	"context"
	"fmt"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENROLL / UNENROLL COMMANDS
// Both resolve the course and the student by id, then change the roster.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollCommand registers a student on a course.
type EnrollCommand struct {
	CourseID  int
	StudentID int
}

// Validate validates the command.
func (c EnrollCommand) Validate() error {
	return validateRosterIDs("Enroll", c.CourseID, c.StudentID)
}

// EnrollResult contains the outcome of an enrollment.
type EnrollResult struct {
	Course  *course.Course
	Student *student.Student

	// AlreadyRegistered is true when the roster did not change.
	AlreadyRegistered bool
}

// UnenrollCommand removes a student from a course.
type UnenrollCommand struct {
	CourseID  int
	StudentID int
}

// Validate validates the command.
func (c UnenrollCommand) Validate() error {
	return validateRosterIDs("Unenroll", c.CourseID, c.StudentID)
}

// UnenrollResult contains the outcome of an unenrollment.
type UnenrollResult struct {
	Course  *course.Course
	Student *student.Student

	// WasRegistered is false when the student was not on the roster.
	WasRegistered bool
}

func validateRosterIDs(op string, courseID, studentID int) error {
	if courseID <= 0 {
		return shared.Invalid("course", op, "course_id must be positive")
	}
	if studentID <= 0 {
		return shared.Invalid("student", op, "student_id must be positive")
	}
	return nil
}

// rosterLookup resolves the pair of entities a roster command works on.
type rosterLookup struct {
	courses  course.Repository
	students student.Repository
}

func (l rosterLookup) resolve(courseID, studentID int) (*course.Course, *student.Student, error) {
	c, err := l.courses.FindByID(courseID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, fmt.Errorf("course %d: %w", courseID, shared.ErrCourseNotFound)
	}

	s, err := l.students.FindByID(studentID)
	if err != nil {
		return nil, nil, err
	}
	if s == nil {
		return nil, nil, fmt.Errorf("student %d: %w", studentID, shared.ErrStudentNotFound)
	}

	return c, s, nil
}

// EnrollHandler handles EnrollCommand.
type EnrollHandler struct {
	lookup rosterLookup
	log    *logger.Logger
}

// NewEnrollHandler creates a new EnrollHandler.
func NewEnrollHandler(courses course.Repository, students student.Repository, log *logger.Logger) *EnrollHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &EnrollHandler{
		lookup: rosterLookup{courses: courses, students: students},
		log:    log.With(logger.Component("enroll")),
	}
}

// Handle executes the command. Enrolling twice is not an error.
func (h *EnrollHandler) Handle(ctx context.Context, cmd EnrollCommand) (*EnrollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("enroll: validation failed: %w", err)
	}

	c, s, err := h.lookup.resolve(cmd.CourseID, cmd.StudentID)
	if err != nil {
		h.log.Warn("enroll target missing", logger.CourseID(cmd.CourseID), logger.StudentID(cmd.StudentID), logger.Err(err))
		return nil, fmt.Errorf("enroll: %w", err)
	}

	already := c.IsRegistered(s)
	if err := c.Register(s); err != nil {
		return nil, fmt.Errorf("enroll: %w", err)
	}

	if !already {
		h.log.Info("student enrolled",
			logger.CourseID(c.ID()),
			logger.StudentID(s.ID()),
			logger.Int("students", c.StudentCount()),
		)
	}

	return &EnrollResult{Course: c, Student: s, AlreadyRegistered: already}, nil
}

// UnenrollHandler handles UnenrollCommand.
type UnenrollHandler struct {
	lookup rosterLookup
	log    *logger.Logger
}

// NewUnenrollHandler creates a new UnenrollHandler.
func NewUnenrollHandler(courses course.Repository, students student.Repository, log *logger.Logger) *UnenrollHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &UnenrollHandler{
		lookup: rosterLookup{courses: courses, students: students},
		log:    log.With(logger.Component("unenroll")),
	}
}

// Handle executes the command. Unenrolling a student who is not on the
// roster leaves it unchanged.
func (h *UnenrollHandler) Handle(ctx context.Context, cmd UnenrollCommand) (*UnenrollResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("unenroll: validation failed: %w", err)
	}

	c, s, err := h.lookup.resolve(cmd.CourseID, cmd.StudentID)
	if err != nil {
		h.log.Warn("unenroll target missing", logger.CourseID(cmd.CourseID), logger.StudentID(cmd.StudentID), logger.Err(err))
		return nil, fmt.Errorf("unenroll: %w", err)
	}

	was := c.IsRegistered(s)
	if err := c.Unregister(s); err != nil {
		return nil, fmt.Errorf("unenroll: %w", err)
	}

	if was {
		h.log.Info("student unenrolled",
			logger.CourseID(c.ID()),
			logger.StudentID(s.ID()),
			logger.Int("students", c.StudentCount()),
		)
	}

	return &UnenrollResult{Course: c, Student: s, WasRegistered: was}, nil
}
