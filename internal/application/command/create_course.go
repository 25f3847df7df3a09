package command

import (
	"context"
	"fmt"
	"time"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COURSE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseCommand contains the data for a new course.
type CreateCourseCommand struct {
	Name         string
	StartDate    time.Time
	WeekDuration int

	// StudentIDs is the initial roster (optional). Every id must belong
	// to a stored student.
	StudentIDs []int
}

// CreateCourseResult contains the stored course.
type CreateCourseResult struct {
	Course *course.Course
}

// CreateCourseHandler handles CreateCourseCommand.
type CreateCourseHandler struct {
	courses  course.Repository
	students student.Repository
	ids      shared.IDSource
	log      *logger.Logger
}

// NewCreateCourseHandler creates a new CreateCourseHandler.
// A nil ids source gets a fresh sequence starting at 1.
func NewCreateCourseHandler(courses course.Repository, students student.Repository, ids shared.IDSource, log *logger.Logger) *CreateCourseHandler {
	if ids == nil {
		ids = shared.NewSequence()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CreateCourseHandler{
		courses:  courses,
		students: students,
		ids:      ids,
		log:      log.With(logger.Component("create_course")),
	}
}

// Handle executes the command.
func (h *CreateCourseHandler) Handle(ctx context.Context, cmd CreateCourseCommand) (*CreateCourseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roster, err := h.resolveRoster(cmd.StudentIDs)
	if err != nil {
		h.log.Warn("rejected course roster", logger.String("name", cmd.Name), logger.Err(err))
		return nil, fmt.Errorf("create_course: %w", err)
	}

	c, err := course.NewCourse(h.ids, course.NewCourseParams{
		Name:         cmd.Name,
		StartDate:    cmd.StartDate,
		WeekDuration: cmd.WeekDuration,
		Students:     roster,
	})
	if err != nil {
		h.log.Warn("rejected course", logger.String("name", cmd.Name), logger.Err(err))
		return nil, fmt.Errorf("create_course: %w", err)
	}

	saved, err := h.courses.Save(c)
	if err != nil {
		return nil, fmt.Errorf("create_course: failed to save course: %w", err)
	}

	h.log.Info("course created",
		logger.CourseID(saved.ID()),
		logger.String("name", saved.Name()),
		logger.String("start_date", timeutil.FormatDate(saved.StartDate())),
		logger.Int("students", saved.StudentCount()),
	)

	return &CreateCourseResult{Course: saved}, nil
}

// resolveRoster loads the students behind ids. An unknown id is a NotFound error.
func (h *CreateCourseHandler) resolveRoster(ids []int) ([]*student.Student, error) {
	roster := make([]*student.Student, 0, len(ids))
	for _, id := range ids {
		s, err := h.students.FindByID(id)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, fmt.Errorf("student %d: %w", id, shared.ErrStudentNotFound)
		}
		roster = append(roster, s)
	}
	return roster, nil
}
