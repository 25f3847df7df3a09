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
// DELETE COMMANDS
// Deleting something that is not stored reports Deleted=false, not an error.
// ══════════════════════════════════════════════════════════════════════════════

// DeleteStudentCommand removes a student by id.
type DeleteStudentCommand struct {
	StudentID int
}

// DeleteStudentResult contains the outcome of a student deletion.
type DeleteStudentResult struct {
	Deleted bool

	// UnenrolledFrom lists the courses the student was removed from.
	UnenrolledFrom []*course.Course
}

// DeleteStudentHandler handles DeleteStudentCommand.
type DeleteStudentHandler struct {
	students student.Repository
	courses  course.Repository
	log      *logger.Logger
}

// NewDeleteStudentHandler creates a new DeleteStudentHandler.
func NewDeleteStudentHandler(students student.Repository, courses course.Repository, log *logger.Logger) *DeleteStudentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DeleteStudentHandler{
		students: students,
		courses:  courses,
		log:      log.With(logger.Component("delete_student")),
	}
}

// Handle executes the command. The student is first taken off every roster
// so no course keeps pointing at a deleted student.
func (h *DeleteStudentHandler) Handle(ctx context.Context, cmd DeleteStudentCommand) (*DeleteStudentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := h.students.FindByID(cmd.StudentID)
	if err != nil {
		return nil, fmt.Errorf("delete_student: %w", err)
	}
	if s == nil {
		return &DeleteStudentResult{Deleted: false, UnenrolledFrom: []*course.Course{}}, nil
	}

	unenrolled := make([]*course.Course, 0)
	for _, c := range h.courses.FindAll() {
		if !c.IsRegistered(s) {
			continue
		}
		if err := c.Unregister(s); err != nil {
			return nil, fmt.Errorf("delete_student: failed to unenroll from course %d: %w", c.ID(), err)
		}
		unenrolled = append(unenrolled, c)
	}

	deleted, err := h.students.Delete(s)
	if err != nil {
		return nil, fmt.Errorf("delete_student: %w", err)
	}

	h.log.Info("student deleted",
		logger.StudentID(s.ID()),
		logger.Bool("deleted", deleted),
		logger.Int("unenrolled_from", len(unenrolled)),
	)

	return &DeleteStudentResult{Deleted: deleted, UnenrolledFrom: unenrolled}, nil
}

// DeleteCourseCommand removes a course by id.
type DeleteCourseCommand struct {
	CourseID int
}

// DeleteCourseResult contains the outcome of a course deletion.
type DeleteCourseResult struct {
	Deleted bool
}

// DeleteCourseHandler handles DeleteCourseCommand.
type DeleteCourseHandler struct {
	courses course.Repository
	log     *logger.Logger
}

// NewDeleteCourseHandler creates a new DeleteCourseHandler.
func NewDeleteCourseHandler(courses course.Repository, log *logger.Logger) *DeleteCourseHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DeleteCourseHandler{
		courses: courses,
		log:     log.With(logger.Component("delete_course")),
	}
}

// Handle executes the command.
func (h *DeleteCourseHandler) Handle(ctx context.Context, cmd DeleteCourseCommand) (*DeleteCourseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := h.courses.FindByID(cmd.CourseID)
	if err != nil {
		return nil, fmt.Errorf("delete_course: %w", err)
	}
	if c == nil {
		return &DeleteCourseResult{Deleted: false}, nil
	}

	deleted, err := h.courses.Delete(c)
	if err != nil {
		return nil, fmt.Errorf("delete_course: %w", err)
	}

	h.log.Info("course deleted",
		logger.CourseID(c.ID()),
		logger.Bool("deleted", deleted),
		logger.Int("students", c.StudentCount()),
	)

	return &DeleteCourseResult{Deleted: deleted}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER SET
// ══════════════════════════════════════════════════════════════════════════════

// Handlers bundles every command handler over one pair of repositories.
type Handlers struct {
	CreateStudent *CreateStudentHandler
	CreateCourse  *CreateCourseHandler
	Enroll        *EnrollHandler
	Unenroll      *UnenrollHandler
	DeleteStudent *DeleteStudentHandler
	DeleteCourse  *DeleteCourseHandler
}

// NewHandlers wires all handlers. Students and courses get their own
// id sequences, both starting at 1.
func NewHandlers(students student.Repository, courses course.Repository, log *logger.Logger) *Handlers {
	return &Handlers{
		CreateStudent: NewCreateStudentHandler(students, shared.NewSequence(), log),
		CreateCourse:  NewCreateCourseHandler(courses, students, shared.NewSequence(), log),
		Enroll:        NewEnrollHandler(courses, students, log),
		Unenroll:      NewUnenrollHandler(courses, students, log),
		DeleteStudent: NewDeleteStudentHandler(students, courses, log),
		DeleteCourse:  NewDeleteCourseHandler(courses, log),
	}
}
