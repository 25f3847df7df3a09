package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/pkg/timeutil"
)

func nextYear() time.Time {
	return timeutil.AddYears(timeutil.Today(), 1)
}

func newStudent(t *testing.T, ids *shared.Sequence, name string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(ids, student.NewStudentParams{
		Name:    name,
		Email:   name + "@student.nu",
		Address: "Storgatan 37",
	})
	require.NoError(t, err)
	return s
}

func newCourse(t *testing.T, ids *shared.Sequence, name string) *Course {
	t.Helper()
	c, err := NewCourse(ids, NewCourseParams{
		Name:         name,
		StartDate:    nextYear(),
		WeekDuration: 52,
	})
	require.NoError(t, err)
	return c
}

func TestNewCourse(t *testing.T) {
	ids := shared.NewSequence()

	c, err := NewCourse(ids, NewCourseParams{
		Name:         "Python for snakes!",
		StartDate:    nextYear(),
		WeekDuration: 52,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, c.ID())
	assert.Equal(t, "Python for snakes!", c.Name())
	assert.True(t, c.StartsOn(nextYear()))
	assert.Equal(t, 52, c.WeekDuration())
	assert.NotNil(t, c.Students())
	assert.Empty(t, c.Students())
}

func TestNewCourse_StartingToday(t *testing.T) {
	c, err := NewCourse(shared.NewSequence(), NewCourseParams{
		Name:         "Today",
		StartDate:    timeutil.Now(),
		WeekDuration: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, timeutil.Today(), c.StartDate())
}

func TestNewCourse_StartDateFromOtherZone(t *testing.T) {
	prev := timeutil.Location
	timeutil.Location = time.FixedZone("UTC-5", -5*3600)
	t.Cleanup(func() { timeutil.Location = prev })

	y, m, d := timeutil.Today().Date()
	todayUTC := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	c, err := NewCourse(shared.NewSequence(), NewCourseParams{
		Name:         "Today",
		StartDate:    todayUTC,
		WeekDuration: 1,
	})
	require.NoError(t, err, "today's date given in UTC is not in the past")
	assert.Equal(t, timeutil.Today(), c.StartDate())

	march := time.Date(y+1, time.March, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, c.SetStartDate(march))
	assert.Equal(t, time.March, c.StartDate().Month())
	assert.Equal(t, 10, c.StartDate().Day())
	assert.True(t, c.StartsOn(march))
}

func TestNewCourse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params NewCourseParams
	}{
		{"empty name", NewCourseParams{Name: "", StartDate: nextYear(), WeekDuration: 1}},
		{"blank name", NewCourseParams{Name: "  ", StartDate: nextYear(), WeekDuration: 1}},
		{"zero date", NewCourseParams{Name: "Go", WeekDuration: 1}},
		{"past date", NewCourseParams{Name: "Go", StartDate: timeutil.Today().AddDate(0, 0, -1), WeekDuration: 1}},
		{"zero duration", NewCourseParams{Name: "Go", StartDate: nextYear(), WeekDuration: 0}},
		{"negative duration", NewCourseParams{Name: "Go", StartDate: nextYear(), WeekDuration: -3}},
		{"nil student in roster", NewCourseParams{Name: "Go", StartDate: nextYear(), WeekDuration: 1, Students: []*student.Student{nil}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := shared.NewSequence()

			c, err := NewCourse(ids, tt.params)
			assert.Nil(t, c)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, 0, ids.Current())
		})
	}
}

func TestNewCourse_NilIDSource(t *testing.T) {
	_, err := NewCourse(nil, NewCourseParams{Name: "Go", StartDate: nextYear(), WeekDuration: 1})
	assert.True(t, shared.IsValidation(err))
}

func TestNewCourse_SeededRosterIsCopied(t *testing.T) {
	sids := shared.NewSequence()
	erik := newStudent(t, sids, "erik")
	anna := newStudent(t, sids, "anna")
	seed := []*student.Student{erik, anna, erik}

	c, err := NewCourse(shared.NewSequence(), NewCourseParams{
		Name:         "Economics",
		StartDate:    nextYear(),
		WeekDuration: 23,
		Students:     seed,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, c.StudentCount(), "duplicates are dropped")

	seed[0] = anna
	assert.True(t, c.Students()[0].Equals(erik), "mutating the input must not alter the roster")
}

func TestCourse_IDsIndependentPerSequence(t *testing.T) {
	courseIDs := shared.NewSequence()
	studentIDs := shared.NewSequence()

	newStudent(t, studentIDs, "erik")
	newStudent(t, studentIDs, "anna")
	c := newCourse(t, courseIDs, "Go")

	assert.Equal(t, 1, c.ID())
}

func TestCourse_Register(t *testing.T) {
	sids := shared.NewSequence()
	erik := newStudent(t, sids, "erik")
	c := newCourse(t, shared.NewSequence(), "Python")

	require.NoError(t, c.Register(erik))
	require.NoError(t, c.Register(erik))

	assert.Equal(t, 1, c.StudentCount())
	assert.True(t, c.IsRegistered(erik))
}

func TestCourse_RegisterNil(t *testing.T) {
	c := newCourse(t, shared.NewSequence(), "Python")

	assert.True(t, shared.IsValidation(c.Register(nil)))
	assert.True(t, shared.IsValidation(c.Unregister(nil)))
}

func TestCourse_Unregister(t *testing.T) {
	sids := shared.NewSequence()
	erik := newStudent(t, sids, "erik")
	anna := newStudent(t, sids, "anna")
	lars := newStudent(t, sids, "lars")
	c := newCourse(t, shared.NewSequence(), "Economics")

	require.NoError(t, c.Register(erik))
	require.NoError(t, c.Register(anna))
	require.NoError(t, c.Register(lars))

	before := c.Students()
	require.NoError(t, c.Unregister(anna))

	assert.Equal(t, 2, c.StudentCount())
	assert.False(t, c.IsRegistered(anna))
	assert.True(t, c.Students()[0].Equals(erik))
	assert.True(t, c.Students()[1].Equals(lars))
	assert.True(t, before[1].Equals(anna), "earlier snapshot must be unaffected")

	// absent student is a silent no-op
	require.NoError(t, c.Unregister(anna))
	assert.Equal(t, 2, c.StudentCount())
}

func TestCourse_StudentsSnapshot(t *testing.T) {
	sids := shared.NewSequence()
	erik := newStudent(t, sids, "erik")
	anna := newStudent(t, sids, "anna")
	c := newCourse(t, shared.NewSequence(), "Python")

	snapshot := c.Students()
	require.NoError(t, c.Register(erik))
	assert.Empty(t, snapshot)

	got := c.Students()
	got[0] = anna
	_ = append(got, anna)
	assert.True(t, c.Students()[0].Equals(erik))
	assert.Equal(t, 1, c.StudentCount())
}

func TestCourse_SetStudents(t *testing.T) {
	sids := shared.NewSequence()
	erik := newStudent(t, sids, "erik")
	c := newCourse(t, shared.NewSequence(), "Python")
	require.NoError(t, c.Register(erik))

	err := c.SetStudents(nil)
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, 1, c.StudentCount(), "nil list keeps the old roster")

	err = c.SetStudents([]*student.Student{erik, nil})
	assert.True(t, shared.IsValidation(err))
	assert.Equal(t, 1, c.StudentCount(), "failed replacement keeps the old roster")

	require.NoError(t, c.SetStudents([]*student.Student{}))
	assert.Equal(t, 0, c.StudentCount())
}

func TestCourse_Setters(t *testing.T) {
	c := newCourse(t, shared.NewSequence(), "Python")

	require.NoError(t, c.SetName("Go"))
	require.NoError(t, c.SetWeekDuration(10))
	require.NoError(t, c.SetStartDate(timeutil.AddYears(timeutil.Today(), 2)))
	assert.Equal(t, "Go", c.Name())
	assert.Equal(t, 10, c.WeekDuration())

	assert.True(t, shared.IsValidation(c.SetName("")))
	assert.True(t, shared.IsValidation(c.SetWeekDuration(0)))
	assert.True(t, shared.IsValidation(c.SetStartDate(time.Time{})))
	assert.True(t, shared.IsValidation(c.SetStartDate(timeutil.Today().AddDate(0, 0, -1))))
	assert.Equal(t, "Go", c.Name())
	assert.Equal(t, 10, c.WeekDuration())
	assert.True(t, c.StartsOn(timeutil.AddYears(timeutil.Today(), 2)))
}

func TestCourse_Equals(t *testing.T) {
	ids := shared.NewSequence()
	a := newCourse(t, ids, "Go")
	b := newCourse(t, ids, "Go")

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
	assert.Equal(t, 1, IndexOf([]*Course{b, a}, a))
	assert.Equal(t, -1, IndexOf([]*Course{b}, a))
}

func TestCourse_HasName(t *testing.T) {
	c := newCourse(t, shared.NewSequence(), "Python for snakes!")

	assert.True(t, c.HasName("PYTHON FOR SNAKES!"))
	assert.False(t, c.HasName("python"), "no substring matching")
}
