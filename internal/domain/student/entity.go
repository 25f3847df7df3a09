// Package student содержит доменную модель студента.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package student

import (
	"fmt"
	"strings"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
)

const domainName = "student"

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student - студент учебного реестра.
// Равенство определяется только идентификатором (см. Equals).
type Student struct {
	// id - назначается при создании и больше не меняется.
	id int

	// name - имя, непустое после обрезки пробелов.
	name string

	// email - адрес почты, обязательно содержит '@'.
	// Уникальность обеспечивает репозиторий, а не сущность.
	email string

	// address - адрес проживания, непустой после обрезки пробелов.
	address string
}

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewStudentParams содержит параметры для создания нового студента.
type NewStudentParams struct {
	Name    string
	Email   string
	Address string
}

// NewStudent создаёт нового студента с валидацией всех полей.
// Идентификатор берётся из ids, поэтому счётчик принадлежит вызывающему.
func NewStudent(ids shared.IDSource, params NewStudentParams) (*Student, error) {
	if ids == nil {
		return nil, shared.NewDomainError(domainName, "New", shared.ErrNilValue, "id source cannot be nil")
	}

	s := &Student{}
	if err := s.SetName(params.Name); err != nil {
		return nil, err
	}
	if err := s.SetEmail(params.Email); err != nil {
		return nil, err
	}
	if err := s.SetAddress(params.Address); err != nil {
		return nil, err
	}

	// id выдаём только после успешной валидации, чтобы не тратить номера.
	s.id = ids.Next()
	return s, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACCESSORS
// ══════════════════════════════════════════════════════════════════════════════

// ID возвращает идентификатор студента.
func (s *Student) ID() int { return s.id }

// Name возвращает имя ровно в том виде, в каком оно было передано.
func (s *Student) Name() string { return s.name }

// Email возвращает адрес почты.
func (s *Student) Email() string { return s.email }

// Address возвращает адрес проживания.
func (s *Student) Address() string { return s.address }

// SetName меняет имя студента.
func (s *Student) SetName(name string) error {
	if shared.IsBlank(name) {
		return shared.Invalid(domainName, "SetName", "name cannot be empty")
	}
	s.name = name
	return nil
}

// SetEmail меняет почту студента.
func (s *Student) SetEmail(email string) error {
	if shared.IsBlank(email) {
		return shared.Invalid(domainName, "SetEmail", "email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return shared.Invalid(domainName, "SetEmail", "email must contain '@'")
	}
	s.email = email
	return nil
}

// SetAddress меняет адрес студента.
func (s *Student) SetAddress(address string) error {
	if shared.IsBlank(address) {
		return shared.Invalid(domainName, "SetAddress", "address cannot be empty")
	}
	s.address = address
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// IDENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Equals сравнивает студентов по идентификатору.
// nil не равен ничему, в том числе другому nil.
func (s *Student) Equals(other *Student) bool {
	if s == nil || other == nil {
		return false
	}
	return s.id == other.id
}

// HasEmail проверяет совпадение почты без учёта регистра.
func (s *Student) HasEmail(email string) bool {
	return shared.EqualFold(s.email, email)
}

// HasName проверяет точное совпадение имени без учёта регистра.
func (s *Student) HasName(name string) bool {
	return shared.EqualFold(s.name, name)
}

// String возвращает строковое представление студента для логирования.
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %d, Name: %s, Email: %s}", s.id, s.name, s.email)
}

// IndexOf возвращает позицию студента в списке по идентификатору или -1.
func IndexOf(list []*Student, target *Student) int {
	for i, s := range list {
		if s.Equals(target) {
			return i
		}
	}
	return -1
}
