package student

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Этот интерфейс определяет контракт для работы с хранилищем студентов.
// Реализация находится в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над коллекцией студентов.
//
// Поиск по уникальному ключу (FindByID, FindByEmail) возвращает nil без ошибки,
// если студент не найден. Поиск по неуникальному ключу возвращает пустой срез.
// Ошибки возвращаются только при невалидных аргументах или нарушении уникальности.
type Repository interface {
	// Save добавляет студента в конец коллекции и возвращает его же.
	// ErrStudentAlreadyExists - студент с таким id уже сохранён.
	// ErrStudentEmailTaken - почта (без учёта регистра) уже занята.
	Save(s *Student) (*Student, error)

	// FindByID возвращает студента по идентификатору.
	// id <= 0 - ошибка валидации.
	FindByID(id int) (*Student, error)

	// FindByEmail возвращает первого студента с такой почтой (без учёта регистра).
	FindByEmail(email string) (*Student, error)

	// FindByName возвращает всех студентов с точно таким именем
	// (без учёта регистра) в порядке добавления.
	FindByName(name string) ([]*Student, error)

	// FindAll возвращает копию коллекции в порядке добавления.
	FindAll() []*Student

	// Delete удаляет студента с тем же id.
	// Возвращает false, если такого студента не было.
	Delete(s *Student) (bool, error)
}
