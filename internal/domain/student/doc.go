// Package student содержит доменную модель студента учебного реестра.
//
// Пакет определяет:
//
//   - Сущность Student с валидацией полей name, email, address
//   - Интерфейс репозитория Repository (реализация в infrastructure)
//
// # Идентификаторы
//
// Идентификатор назначается при создании из переданного shared.IDSource.
// Глобального счётчика нет: каждый владелец (обычно слой application)
// держит свою последовательность, а тесты создают новую.
//
//	ids := shared.NewSequence()
//	erik, err := student.NewStudent(ids, student.NewStudentParams{
//	    Name:    "Erik Andersson",
//	    Email:   "erik@student.nu",
//	    Address: "Storgatan 37",
//	})
//
// # Равенство
//
// Два студента равны тогда и только тогда, когда совпадают их id.
// Остальные поля на равенство не влияют.
package student
