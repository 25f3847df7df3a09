// Package course содержит доменную модель учебного курса.
//
// Course хранит состав записанных студентов (roster). Связь однонаправленная:
// курс знает своих студентов, студент о курсах не знает.
//
// Состав всегда копируется на входе и на выходе:
//
//	roster := python.Students()  // снимок
//	python.Register(erik)        // roster не изменится
//
// Register идемпотентен, Unregister молча игнорирует отсутствующего студента.
package course
