package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/command"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/query"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/interface/cli/presenter"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample scenario: two students, two courses, lookups and deletions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.runDemo(cmd.Context())
		},
	}
}

// runDemo проходит сценарий целиком: создание, запись на курсы, поиск,
// удаление и повторный вывод.
func (a *app) runDemo(ctx context.Context) error {
	cmds := a.commands

	// ─────────────────────────────────────────────────────────────────────────
	// 1. СТУДЕНТЫ И КУРСЫ
	// ─────────────────────────────────────────────────────────────────────────
	erik, err := cmds.CreateStudent.Handle(ctx, command.CreateStudentCommand{
		Name: "Erik Andersson", Email: "erik@student.nu", Address: "Storgatan 37",
	})
	if err != nil {
		return err
	}
	anna, err := cmds.CreateStudent.Handle(ctx, command.CreateStudentCommand{
		Name: "Anna Svensson", Email: "anna@student.nu", Address: "Luhrpasset 31",
	})
	if err != nil {
		return err
	}

	nextYear := timeutil.AddYears(timeutil.Today(), 1)
	python, err := cmds.CreateCourse.Handle(ctx, command.CreateCourseCommand{
		Name: "Python for snakes!", StartDate: nextYear, WeekDuration: 52,
	})
	if err != nil {
		return err
	}
	economics, err := cmds.CreateCourse.Handle(ctx, command.CreateCourseCommand{
		Name: "Ekonomitips från deltagare i Lyxfällan!", StartDate: nextYear, WeekDuration: 23,
	})
	if err != nil {
		return err
	}

	if err := a.printStudents(ctx); err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. ЗАПИСЬ НА КУРСЫ
	// ─────────────────────────────────────────────────────────────────────────
	for _, e := range []command.EnrollCommand{
		{CourseID: python.Course.ID(), StudentID: erik.Student.ID()},
		{CourseID: economics.Course.ID(), StudentID: erik.Student.ID()},
		{CourseID: economics.Course.ID(), StudentID: anna.Student.ID()},
	} {
		if _, err := cmds.Enroll.Handle(ctx, e); err != nil {
			return err
		}
	}

	if err := a.printCourses(ctx); err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 3. ПОИСК
	// ─────────────────────────────────────────────────────────────────────────
	byName, err := a.findStudents.Handle(ctx, query.FindStudentsQuery{Name: "Erik Andersson"})
	if err != nil {
		return err
	}
	a.printf("Search result for students by name: \n%s\n", presenter.StudentList(byName.Students))

	byID, err := a.findStudents.Handle(ctx, query.FindStudentsQuery{ID: 2})
	if err != nil {
		return err
	}
	a.printf("Search result for students by id: \n%s\n", presenter.StudentCard(first(byID.Students)))

	byEmail, err := a.findStudents.Handle(ctx, query.FindStudentsQuery{Email: "erik@student.nu"})
	if err != nil {
		return err
	}
	a.printf("Search result for students by email: \n%s\n", presenter.StudentCard(first(byEmail.Students)))

	courseByID, err := a.findCourses.Handle(ctx, query.FindCoursesQuery{ID: 1})
	if err != nil {
		return err
	}
	a.printf("Search result for course by id: \n%s\n", presenter.CourseCard(first(courseByID.Courses)))

	courseByName, err := a.findCourses.Handle(ctx, query.FindCoursesQuery{Name: "python"})
	if err != nil {
		return err
	}
	a.printf("Search result for course by name: \n%s\n", presenter.CourseList(courseByName.Courses))

	courseByDate, err := a.findCourses.Handle(ctx, query.FindCoursesQuery{Date: nextYear})
	if err != nil {
		return err
	}
	a.printf("Search result for course by with a certain start date: \n%s\n", presenter.CourseList(courseByDate.Courses))

	// ─────────────────────────────────────────────────────────────────────────
	// 4. УДАЛЕНИЕ
	// ─────────────────────────────────────────────────────────────────────────
	deletedStudent, err := cmds.DeleteStudent.Handle(ctx, command.DeleteStudentCommand{StudentID: anna.Student.ID()})
	if err != nil {
		return err
	}
	a.printf("Result of deleting a student: %t\n", deletedStudent.Deleted)

	deletedCourse, err := cmds.DeleteCourse.Handle(ctx, command.DeleteCourseCommand{CourseID: python.Course.ID()})
	if err != nil {
		return err
	}
	a.printf("Result of deleting a course: %t\n\n", deletedCourse.Deleted)

	a.printf("Printing out the students again: \n\n")
	if err := a.printStudents(ctx); err != nil {
		return err
	}
	a.printf("Printing out the courses again: \n\n")
	return a.printCourses(ctx)
}

func (a *app) printStudents(ctx context.Context) error {
	res, err := a.findStudents.Handle(ctx, query.FindStudentsQuery{})
	if err != nil {
		return fmt.Errorf("list students: %w", err)
	}
	for _, s := range res.Students {
		a.printf("%s\n", presenter.StudentCard(s))
	}
	return nil
}

func (a *app) printCourses(ctx context.Context) error {
	res, err := a.findCourses.Handle(ctx, query.FindCoursesQuery{})
	if err != nil {
		return fmt.Errorf("list courses: %w", err)
	}
	for _, c := range res.Courses {
		a.printf("%s\n", presenter.CourseCard(c))
	}
	return nil
}

// first возвращает первый элемент или nil для пустого результата.
func first[T any](list []*T) *T {
	if len(list) == 0 {
		return nil
	}
	return list[0]
}
