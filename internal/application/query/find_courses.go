package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND COURSES QUERY
// ══════════════════════════════════════════════════════════════════════════════

// FindCoursesQuery содержит критерий поиска курсов.
type FindCoursesQuery struct {
	ID   int
	Name string

	// Date - календарный день старта, время суток игнорируется.
	Date time.Time
}

// Validate проверяет, что задан не более чем один критерий.
func (q FindCoursesQuery) Validate() error {
	set := 0
	if q.ID != 0 {
		set++
	}
	if q.Name != "" {
		set++
	}
	if !q.Date.IsZero() {
		set++
	}
	if set > 1 {
		return errors.New("only one of id, name, date may be set")
	}
	return nil
}

// FindCoursesResult - найденные курсы в порядке добавления.
type FindCoursesResult struct {
	Courses []*course.Course
}

// FindCoursesHandler обрабатывает FindCoursesQuery.
type FindCoursesHandler struct {
	courses course.Repository
	log     *logger.Logger
}

// NewFindCoursesHandler создаёт новый обработчик.
func NewFindCoursesHandler(courses course.Repository, log *logger.Logger) *FindCoursesHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FindCoursesHandler{courses: courses, log: log}
}

// Handle выполняет запрос.
func (h *FindCoursesHandler) Handle(ctx context.Context, q FindCoursesQuery) (*FindCoursesResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("find_courses: %w", shared.WrapError("course", "Find", shared.ErrInvalidInput, "ambiguous query", err))
	}

	var (
		found []*course.Course
		err   error
	)

	switch {
	case q.ID != 0:
		var c *course.Course
		c, err = h.courses.FindByID(q.ID)
		found = single(c)
	case q.Name != "":
		found, err = h.courses.FindByName(q.Name)
	case !q.Date.IsZero():
		found, err = h.courses.FindByDate(q.Date)
	default:
		found = h.courses.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("find_courses: %w", err)
	}

	h.log.Debug("courses found", logger.Operation("find_courses"), logger.Int("count", len(found)))

	return &FindCoursesResult{Courses: found}, nil
}
