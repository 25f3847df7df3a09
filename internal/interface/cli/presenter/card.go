// Package presenter formats registry entities for terminal output.
package presenter

import (
	"fmt"
	"strings"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/course"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY CARDS
// Текстовые карточки студента и курса в одном фиксированном формате.
// ══════════════════════════════════════════════════════════════════════════════

const separator = "---------------------------"

// StudentCard renders a student as an information block.
func StudentCard(s *student.Student) string {
	if s == nil {
		return "null\n"
	}
	var sb strings.Builder
	sb.WriteString("-- Student Information --\n")
	fmt.Fprintf(&sb, "Id: %d\n", s.ID())
	fmt.Fprintf(&sb, "Name: %s\n", s.Name())
	fmt.Fprintf(&sb, "Email: %s\n", s.Email())
	fmt.Fprintf(&sb, "Address: %s\n", s.Address())
	sb.WriteString(separator + "\n")
	return sb.String()
}

// CourseCard renders a course as an information block.
func CourseCard(c *course.Course) string {
	if c == nil {
		return "null\n"
	}
	var sb strings.Builder
	sb.WriteString("-- Course Information --\n")
	fmt.Fprintf(&sb, "Id: %d\n", c.ID())
	fmt.Fprintf(&sb, "Course name: %s\n", c.Name())
	fmt.Fprintf(&sb, "Start Date: %s\n", timeutil.FormatDate(c.StartDate()))
	fmt.Fprintf(&sb, "Duration: %d\n", c.WeekDuration())
	fmt.Fprintf(&sb, "Number of students: %d\n", c.StudentCount())
	sb.WriteString(separator + "\n")
	return sb.String()
}

// Roster renders the course card followed by one line per registered student.
func Roster(c *course.Course) string {
	if c == nil {
		return "null\n"
	}
	var sb strings.Builder
	sb.WriteString(CourseCard(c))
	for _, s := range c.Students() {
		fmt.Fprintf(&sb, "  #%d %s <%s>\n", s.ID(), s.Name(), s.Email())
	}
	return sb.String()
}

// StudentList renders cards for every student, one blank line apart.
// An empty list renders as "[]".
func StudentList(list []*student.Student) string {
	return joinCards(len(list), func(i int) string { return StudentCard(list[i]) })
}

// CourseList renders cards for every course, one blank line apart.
func CourseList(list []*course.Course) string {
	return joinCards(len(list), func(i int) string { return CourseCard(list[i]) })
}

func joinCards(n int, card func(int) string) string {
	if n == 0 {
		return "[]\n"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = card(i)
	}
	return strings.Join(parts, "\n")
}
