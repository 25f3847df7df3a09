// Package course содержит доменную модель учебного курса и его состава.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package course

import (
	"fmt"
	"time"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

const domainName = "course"

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course - учебный курс со списком записанных студентов.
// Студент не хранит обратной ссылки на курс.
type Course struct {
	// id - назначается при создании и больше не меняется.
	id int

	// name - название курса, непустое после обрезки пробелов.
	name string

	// startDate - дата начала (полночь в timeutil.Location).
	// Не раньше "сегодня" на момент установки.
	startDate time.Time

	// weekDuration - длительность в неделях, строго положительная.
	weekDuration int

	// students - состав курса в порядке записи, без повторов по id.
	students []*student.Student
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewCourseParams содержит параметры для создания нового курса.
type NewCourseParams struct {
	Name         string
	StartDate    time.Time
	WeekDuration int

	// Students - начальный состав. nil означает пустой курс.
	Students []*student.Student
}

// NewCourse создаёт новый курс с валидацией всех полей.
func NewCourse(ids shared.IDSource, params NewCourseParams) (*Course, error) {
	if ids == nil {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrNilValue, "id source cannot be nil")
	}

	c := &Course{students: []*student.Student{}}
	if err := c.SetName(params.Name); err != nil {
		return nil, err
	}
	if err := c.SetStartDate(params.StartDate); err != nil {
		return nil, err
	}
	if err := c.SetWeekDuration(params.WeekDuration); err != nil {
		return nil, err
	}
	if params.Students != nil {
		if err := c.SetStudents(params.Students); err != nil {
			return nil, err
		}
	}

	c.id = ids.Next()
	return c, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID возвращает идентификатор курса.
func (c *Course) ID() int { return c.id }

// Name возвращает название курса.
func (c *Course) Name() string { return c.name }

// StartDate возвращает дату начала курса.
func (c *Course) StartDate() time.Time { return c.startDate }

// WeekDuration возвращает длительность курса в неделях.
func (c *Course) WeekDuration() int { return c.weekDuration }

// Students возвращает копию состава курса.
// Изменение возвращённого среза не влияет на курс.
func (c *Course) Students() []*student.Student {
	out := make([]*student.Student, len(c.students))
	copy(out, c.students)
	return out
}

// StudentCount возвращает размер состава.
func (c *Course) StudentCount() int { return len(c.students) }

// SetName меняет название курса.
func (c *Course) SetName(name string) error {
	if shared.IsBlank(name) {
		return shared.Invalid(domainName, "SetName", "course name cannot be empty")
	}
	c.name = name
	return nil
}

// SetStartDate меняет дату начала. Проверка "не в прошлом" выполняется
// относительно текущего дня при каждом вызове.
func (c *Course) SetStartDate(date time.Time) error {
	if date.IsZero() {
		return shared.Invalid(domainName, "SetStartDate", "start date cannot be empty")
	}
	if timeutil.IsBeforeToday(date) {
		return shared.Invalid(domainName, "SetStartDate", "start date cannot be in the past")
	}
	c.startDate = timeutil.StartOfDay(date)
	return nil
}

// SetWeekDuration меняет длительность курса.
func (c *Course) SetWeekDuration(weeks int) error {
	if weeks <= 0 {
		return shared.Invalid(domainName, "SetWeekDuration", "duration cannot be zero or a negative number")
	}
	c.weekDuration = weeks
	return nil
}

// SetStudents заменяет состав курса копией списка.
// Сам список и его элементы не могут быть nil, повторы по id отбрасываются.
// Пустой список очищает состав.
func (c *Course) SetStudents(list []*student.Student) error {
	if list == nil {
		return shared.Invalid(domainName, "SetStudents", "students cannot be nil")
	}
	roster := make([]*student.Student, 0, len(list))
	for _, s := range list {
		if s == nil {
			return shared.Invalid(domainName, "SetStudents", "students cannot contain nil")
		}
		if student.IndexOf(roster, s) < 0 {
			roster = append(roster, s)
		}
	}
	c.students = roster
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER OPERATIONS
// ══════════════════════════════════════════════════════════════════════════════

// Register записывает студента на курс.
// Повторная запись того же студента ничего не меняет.
func (c *Course) Register(s *student.Student) error {
	if s == nil {
		return shared.Invalid(domainName, "Register", "student cannot be nil")
	}
	if student.IndexOf(c.students, s) < 0 {
		c.students = append(c.students, s)
	}
	return nil
}

// Unregister удаляет студента из состава, если он там есть.
func (c *Course) Unregister(s *student.Student) error {
	if s == nil {
		return shared.Invalid(domainName, "Unregister", "student cannot be nil")
	}
	if i := student.IndexOf(c.students, s); i >= 0 {
		c.students = append(c.students[:i:i], c.students[i+1:]...)
	}
	return nil
}

// IsRegistered проверяет, записан ли студент на курс.
func (c *Course) IsRegistered(s *student.Student) bool {
	return student.IndexOf(c.students, s) >= 0
}

// ══════════════════════════════════════════════════════════════════════════════
// IDENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Equals сравнивает курсы по идентификатору.
func (c *Course) Equals(other *Course) bool {
	if c == nil || other == nil {
		return false
	}
	return c.id == other.id
}

// HasName проверяет точное совпадение названия без учёта регистра.
func (c *Course) HasName(name string) bool {
	return shared.EqualFold(c.name, name)
}

// StartsOn проверяет, начинается ли курс в указанный день.
func (c *Course) StartsOn(date time.Time) bool {
	return timeutil.IsSameDay(c.startDate, date)
}

// String возвращает строковое представление курса для логирования.
func (c *Course) String() string {
	return fmt.Sprintf(
		"Course{ID: %d, Name: %s, Start: %s, Weeks: %d, Students: %d}",
		c.id, c.name, timeutil.FormatDate(c.startDate), c.weekDuration, len(c.students),
	)
}

// IndexOf возвращает позицию курса в списке по идентификатору или -1.
func IndexOf(list []*Course, target *Course) int {
	for i, c := range list {
		if c.Equals(target) {
			return i
		}
	}
	return -1
}
