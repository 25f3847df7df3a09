package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/config"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/command"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/query"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/infrastructure/persistence/memory"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "In-memory student and course registry",
		Long: `registry keeps students and courses in memory for the lifetime of one run.

Configuration is read from REGISTRY_* environment variables:
  REGISTRY_APP_ENV       development | staging | production
  REGISTRY_APP_TIMEZONE  timezone that defines "today" (default: Local)
  REGISTRY_LOG_LEVEL     debug | info | warn | error
  REGISTRY_LOG_FORMAT    json | console
  REGISTRY_SEED_FILE     default seed file for "import"`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newDemoCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "registry %s\n", version)
			return err
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// APPLICATION WIRING
// ══════════════════════════════════════════════════════════════════════════════

// app связывает конфигурацию, репозитории и обработчики одного запуска.
type app struct {
	cfg *config.Config
	log *logger.Logger
	out io.Writer

	students *memory.StudentRepository
	courses  *memory.CourseRepository

	commands     *command.Handlers
	findStudents *query.FindStudentsHandler
	findCourses  *query.FindCoursesHandler
	roster       *query.GetCourseRosterHandler
}

func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply()

	opts := cfg.LoggerOptions()
	opts.Output = cmd.ErrOrStderr()
	log := logger.New(opts).With(
		logger.String("app", cfg.App.Name),
		logger.String("run_id", uuid.NewString()),
	)

	students := memory.NewStudentRepository()
	courses := memory.NewCourseRepository()

	log.Debug("registry ready",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("timezone", cfg.App.Location.String()),
	)

	return &app{
		cfg:          cfg,
		log:          log,
		out:          cmd.OutOrStdout(),
		students:     students,
		courses:      courses,
		commands:     command.NewHandlers(students, courses, log),
		findStudents: query.NewFindStudentsHandler(students, log),
		findCourses:  query.NewFindCoursesHandler(courses, log),
		roster:       query.NewGetCourseRosterHandler(courses, log),
	}, nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
