package query

import (
	"context"
	"fmt"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET COURSE ROSTER QUERY
// Возвращает курс и снимок его списка студентов.
// ══════════════════════════════════════════════════════════════════════════════

// GetCourseRosterQuery - id курса.
type GetCourseRosterQuery struct {
	CourseID int
}

// GetCourseRosterResult содержит курс и копию списка студентов.
// Изменение Students не влияет на курс.
type GetCourseRosterResult struct {
	Course   *course.Course
	Students []*student.Student
}

// GetCourseRosterHandler обрабатывает GetCourseRosterQuery.
type GetCourseRosterHandler struct {
	courses course.Repository
	log     *logger.Logger
}

// NewGetCourseRosterHandler создаёт новый обработчик.
func NewGetCourseRosterHandler(courses course.Repository, log *logger.Logger) *GetCourseRosterHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &GetCourseRosterHandler{courses: courses, log: log}
}

// Handle выполняет запрос. Отсутствующий курс - ошибка вида NotFound.
func (h *GetCourseRosterHandler) Handle(ctx context.Context, q GetCourseRosterQuery) (*GetCourseRosterResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := h.courses.FindByID(q.CourseID)
	if err != nil {
		return nil, fmt.Errorf("get_course_roster: %w", err)
	}
	if c == nil {
		return nil, fmt.Errorf("get_course_roster: course %d: %w", q.CourseID, shared.ErrCourseNotFound)
	}

	h.log.Debug("roster loaded", logger.CourseID(c.ID()), logger.Int("students", c.StudentCount()))

	return &GetCourseRosterResult{Course: c, Students: c.Students()}, nil
}
