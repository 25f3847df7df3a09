// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND STUDENTS QUERY
// Поиск студентов по id, email или имени. Без критериев возвращает всех.
// ══════════════════════════════════════════════════════════════════════════════

// FindStudentsQuery содержит критерий поиска. Задаётся не более одного поля.
type FindStudentsQuery struct {
	// ID - точный идентификатор.
	ID int

	// Email - сравнение без учёта регистра.
	Email string

	// Name - полное совпадение имени без учёта регистра.
	Name string
}

// Validate проверяет, что задан не более чем один критерий.
func (q FindStudentsQuery) Validate() error {
	set := 0
	if q.ID != 0 {
		set++
	}
	if q.Email != "" {
		set++
	}
	if q.Name != "" {
		set++
	}
	if set > 1 {
		return errors.New("only one of id, email, name may be set")
	}
	return nil
}

// FindStudentsResult - найденные студенты в порядке добавления.
// Пустой результат - пустой слайс, а не nil.
type FindStudentsResult struct {
	Students []*student.Student
}

// FindStudentsHandler обрабатывает FindStudentsQuery.
type FindStudentsHandler struct {
	students student.Repository
	log      *logger.Logger
}

// NewFindStudentsHandler создаёт новый обработчик.
func NewFindStudentsHandler(students student.Repository, log *logger.Logger) *FindStudentsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &FindStudentsHandler{students: students, log: log}
}

// Handle выполняет запрос.
func (h *FindStudentsHandler) Handle(ctx context.Context, q FindStudentsQuery) (*FindStudentsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("find_students: %w", shared.WrapError("student", "Find", shared.ErrInvalidInput, "ambiguous query", err))
	}

	var (
		found []*student.Student
		err   error
	)

	switch {
	case q.ID != 0:
		var s *student.Student
		s, err = h.students.FindByID(q.ID)
		found = single(s)
	case q.Email != "":
		var s *student.Student
		s, err = h.students.FindByEmail(q.Email)
		found = single(s)
	case q.Name != "":
		found, err = h.students.FindByName(q.Name)
	default:
		found = h.students.FindAll()
	}
	if err != nil {
		return nil, fmt.Errorf("find_students: %w", err)
	}

	h.log.Debug("students found", logger.Operation("find_students"), logger.Int("count", len(found)))

	return &FindStudentsResult{Students: found}, nil
}

// single превращает результат точечного поиска в список из 0 или 1 элемента.
func single[T any](item *T) []*T {
	if item == nil {
		return []*T{}
	}
	return []*T{item}
}
