package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/application/query"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/infrastructure/seed"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/interface/cli/presenter"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/logger"
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a YAML seed file and print every course with its roster",
		Args:  cobra.NoArgs,
		RunE:  runImport,
	}
	cmd.Flags().StringP("file", "f", "", "seed file (default: $REGISTRY_SEED_FILE)")
	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("getting file flag: %w", err)
	}
	if path == "" {
		path = a.cfg.Seed.File
	}
	if path == "" {
		return errors.New("no seed file: pass --file or set REGISTRY_SEED_FILE")
	}

	f, err := seed.Load(path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	start := time.Now()
	if _, err := seed.Apply(ctx, f, a.commands); err != nil {
		return fmt.Errorf("apply seed: %w", err)
	}
	a.log.Info("seed imported",
		logger.String("file", path),
		logger.Latency(time.Since(start)),
		logger.Int("students", a.students.Count()),
		logger.Int("courses", a.courses.Count()),
	)

	all, err := a.findCourses.Handle(ctx, query.FindCoursesQuery{})
	if err != nil {
		return err
	}
	for _, c := range all.Courses {
		res, err := a.roster.Handle(ctx, query.GetCourseRosterQuery{CourseID: c.ID()})
		if err != nil {
			return err
		}
		a.printf("%s\n", presenter.Roster(res.Course))
	}
	return nil
}
