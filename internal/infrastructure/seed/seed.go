// Package seed loads registry records from a YAML file and replays them
// through the application commands.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/command"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

// File is the decoded seed document.
type File struct {
	Students    []StudentRecord    `yaml:"students" validate:"dive"`
	Courses     []CourseRecord     `yaml:"courses" validate:"dive"`
	Enrollments []EnrollmentRecord `yaml:"enrollments" validate:"dive"`
}

// StudentRecord describes one student. Key is only used inside the file.
type StudentRecord struct {
	Key     string `yaml:"key" validate:"required"`
	Name    string `yaml:"name" validate:"required"`
	Email   string `yaml:"email" validate:"required,contains=@"`
	Address string `yaml:"address" validate:"required"`
}

// CourseRecord describes one course. StartDate uses the YYYY-MM-DD layout.
type CourseRecord struct {
	Key          string `yaml:"key" validate:"required"`
	Name         string `yaml:"name" validate:"required"`
	StartDate    string `yaml:"start_date" validate:"required,datetime=2006-01-02"`
	WeekDuration int    `yaml:"week_duration" validate:"gt=0"`
}

// EnrollmentRecord puts the listed students on a course.
type EnrollmentRecord struct {
	Course   string   `yaml:"course" validate:"required"`
	Students []string `yaml:"students" validate:"required,min=1,dive,required"`
}

// Result holds the created entities keyed by their seed key.
type Result struct {
	Students map[string]*student.Student
	Courses  map[string]*course.Course
}

var validate = validator.New()

// Load reads and parses the seed file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a seed document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	if err := f.checkKeys(); err != nil {
		return nil, fmt.Errorf("validate seed: %w", err)
	}
	return &f, nil
}

// checkKeys requires unique keys and enrollments that only reference
// declared students and courses.
func (f *File) checkKeys() error {
	students := make(map[string]struct{}, len(f.Students))
	for _, s := range f.Students {
		if _, dup := students[s.Key]; dup {
			return fmt.Errorf("duplicate student key %q", s.Key)
		}
		students[s.Key] = struct{}{}
	}

	courses := make(map[string]struct{}, len(f.Courses))
	for _, c := range f.Courses {
		if _, dup := courses[c.Key]; dup {
			return fmt.Errorf("duplicate course key %q", c.Key)
		}
		courses[c.Key] = struct{}{}
	}

	for _, e := range f.Enrollments {
		if _, ok := courses[e.Course]; !ok {
			return fmt.Errorf("enrollment references unknown course %q", e.Course)
		}
		for _, key := range e.Students {
			if _, ok := students[key]; !ok {
				return fmt.Errorf("enrollment in %q references unknown student %q", e.Course, key)
			}
		}
	}
	return nil
}

// Apply creates every record through the command handlers, so all domain
// rules apply. It stops at the first failing record; records created
// before it stay stored.
func Apply(ctx context.Context, f *File, h *command.Handlers) (*Result, error) {
	res := &Result{
		Students: make(map[string]*student.Student, len(f.Students)),
		Courses:  make(map[string]*course.Course, len(f.Courses)),
	}

	for _, rec := range f.Students {
		out, err := h.CreateStudent.Handle(ctx, command.CreateStudentCommand{
			Name:    rec.Name,
			Email:   rec.Email,
			Address: rec.Address,
		})
		if err != nil {
			return res, fmt.Errorf("seed student %q: %w", rec.Key, err)
		}
		res.Students[rec.Key] = out.Student
	}

	for _, rec := range f.Courses {
		start, err := timeutil.ParseDate(rec.StartDate)
		if err != nil {
			return res, fmt.Errorf("seed course %q: %w", rec.Key, err)
		}
		out, err := h.CreateCourse.Handle(ctx, command.CreateCourseCommand{
			Name:         rec.Name,
			StartDate:    start,
			WeekDuration: rec.WeekDuration,
		})
		if err != nil {
			return res, fmt.Errorf("seed course %q: %w", rec.Key, err)
		}
		res.Courses[rec.Key] = out.Course
	}

	for _, rec := range f.Enrollments {
		c := res.Courses[rec.Course]
		for _, key := range rec.Students {
			s, ok := res.Students[key]
			if c == nil || !ok {
				return res, fmt.Errorf("seed enrollment %q/%q: unknown key", rec.Course, key)
			}
			_, err := h.Enroll.Handle(ctx, command.EnrollCommand{CourseID: c.ID(), StudentID: s.ID()})
			if err != nil {
				return res, fmt.Errorf("seed enrollment %q/%q: %w", rec.Course, key, err)
			}
		}
	}

	return res, nil
}
