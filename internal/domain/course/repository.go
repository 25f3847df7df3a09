package course

import "time"

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над коллекцией курсов.
//
// FindByID возвращает nil без ошибки, если курс не найден.
// FindByName и FindByDate возвращают пустой срез, если совпадений нет.
type Repository interface {
	// Save добавляет курс в конец коллекции и возвращает его же.
	// ErrCourseAlreadyExists - курс с таким id уже сохранён.
	Save(c *Course) (*Course, error)

	// FindByID возвращает курс по идентификатору. id <= 0 - ошибка валидации.
	FindByID(id int) (*Course, error)

	// FindByName возвращает курсы с точно таким названием (без учёта регистра).
	// Поиск по подстроке не выполняется.
	FindByName(name string) ([]*Course, error)

	// FindByDate возвращает курсы, начинающиеся в указанный день.
	FindByDate(date time.Time) ([]*Course, error)

	// FindAll возвращает копию коллекции в порядке добавления.
	FindAll() []*Course

	// Delete удаляет курс с тем же id. false - курса не было.
	Delete(c *Course) (bool, error)
}
