// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE STUDENT COMMAND
// Builds a new student from the handler's id sequence and stores it.
// ══════════════════════════════════════════════════════════════════════════════

// CreateStudentCommand contains the data for a new student.
type CreateStudentCommand struct {
	Name    string
	Email   string
	Address string
}

// CreateStudentResult contains the stored student.
type CreateStudentResult struct {
	Student *student.Student
}

// CreateStudentHandler handles CreateStudentCommand.
type CreateStudentHandler struct {
	students student.Repository
	ids      shared.IDSource
	log      *logger.Logger
}

// NewCreateStudentHandler creates a new CreateStudentHandler.
// A nil ids source gets a fresh sequence starting at 1.
func NewCreateStudentHandler(students student.Repository, ids shared.IDSource, log *logger.Logger) *CreateStudentHandler {
	if ids == nil {
		ids = shared.NewSequence()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CreateStudentHandler{
		students: students,
		ids:      ids,
		log:      log.With(logger.Component("create_student")),
	}
}

// Handle executes the command.
func (h *CreateStudentHandler) Handle(ctx context.Context, cmd CreateStudentCommand) (*CreateStudentResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Check the email before taking an id so a rejected save does not burn one.
	if !shared.IsBlank(cmd.Email) {
		existing, err := h.students.FindByEmail(cmd.Email)
		if err != nil {
			return nil, fmt.Errorf("create_student: failed to check email: %w", err)
		}
		if existing != nil {
			h.log.Warn("email already registered", logger.Email(cmd.Email), logger.StudentID(existing.ID()))
			return nil, fmt.Errorf("create_student: %w", shared.ErrStudentEmailTaken)
		}
	}

	s, err := student.NewStudent(h.ids, student.NewStudentParams{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Address: cmd.Address,
	})
	if err != nil {
		h.log.Warn("rejected student", logger.Err(err))
		return nil, fmt.Errorf("create_student: %w", err)
	}

	saved, err := h.students.Save(s)
	if err != nil {
		return nil, fmt.Errorf("create_student: failed to save student: %w", err)
	}

	h.log.Info("student created",
		logger.StudentID(saved.ID()),
		logger.Email(saved.Email()),
	)

	return &CreateStudentResult{Student: saved}, nil
}
