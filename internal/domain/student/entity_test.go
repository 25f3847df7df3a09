package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
)

func validParams() NewStudentParams {
	return NewStudentParams{
		Name:    "Erik Andersson",
		Email:   "erik@student.nu",
		Address: "Storgatan 37",
	}
}

func TestNewStudent(t *testing.T) {
	ids := shared.NewSequence()

	s, err := NewStudent(ids, validParams())
	require.NoError(t, err)

	assert.Equal(t, 1, s.ID())
	assert.Equal(t, "Erik Andersson", s.Name())
	assert.Equal(t, "erik@student.nu", s.Email())
	assert.Equal(t, "Storgatan 37", s.Address())
}

func TestNewStudent_KeepsValuesUntrimmed(t *testing.T) {
	s, err := NewStudent(shared.NewSequence(), NewStudentParams{
		Name:    "  Anna ",
		Email:   " anna@student.nu",
		Address: "Luhrpasset 31 ",
	})
	require.NoError(t, err)

	assert.Equal(t, "  Anna ", s.Name())
	assert.Equal(t, " anna@student.nu", s.Email())
	assert.Equal(t, "Luhrpasset 31 ", s.Address())
}

func TestNewStudent_IDsIncrease(t *testing.T) {
	ids := shared.NewSequence()

	prev := 0
	for i := 0; i < 5; i++ {
		s, err := NewStudent(ids, validParams())
		require.NoError(t, err)
		assert.Greater(t, s.ID(), prev)
		prev = s.ID()
	}
}

func TestNewStudent_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *NewStudentParams)
	}{
		{"empty name", func(p *NewStudentParams) { p.Name = "" }},
		{"blank name", func(p *NewStudentParams) { p.Name = "   " }},
		{"empty email", func(p *NewStudentParams) { p.Email = "" }},
		{"blank email", func(p *NewStudentParams) { p.Email = " \t" }},
		{"email without at", func(p *NewStudentParams) { p.Email = "erik.student.nu" }},
		{"empty address", func(p *NewStudentParams) { p.Address = "" }},
		{"blank address", func(p *NewStudentParams) { p.Address = "  " }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := shared.NewSequence()
			params := validParams()
			tt.mutate(&params)

			s, err := NewStudent(ids, params)
			assert.Nil(t, s)
			assert.True(t, shared.IsValidation(err))
			assert.Equal(t, 0, ids.Current(), "failed construction must not consume an id")
		})
	}
}

func TestNewStudent_NilIDSource(t *testing.T) {
	_, err := NewStudent(nil, validParams())
	assert.True(t, shared.IsValidation(err))
}

func TestStudent_Setters(t *testing.T) {
	s, err := NewStudent(shared.NewSequence(), validParams())
	require.NoError(t, err)

	require.NoError(t, s.SetName("Erik A"))
	require.NoError(t, s.SetEmail("erik@example.com"))
	require.NoError(t, s.SetAddress("Kungsgatan 1"))
	assert.Equal(t, "Erik A", s.Name())
	assert.Equal(t, "erik@example.com", s.Email())
	assert.Equal(t, "Kungsgatan 1", s.Address())

	assert.True(t, shared.IsValidation(s.SetName(" ")))
	assert.True(t, shared.IsValidation(s.SetEmail("no-at-sign")))
	assert.True(t, shared.IsValidation(s.SetAddress("")))

	// failed setters leave the previous value in place
	assert.Equal(t, "Erik A", s.Name())
	assert.Equal(t, "erik@example.com", s.Email())
	assert.Equal(t, "Kungsgatan 1", s.Address())
}

func TestStudent_Equals(t *testing.T) {
	ids := shared.NewSequence()
	a, _ := NewStudent(ids, validParams())
	b, _ := NewStudent(ids, validParams())

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b), "same fields, different id")
	assert.False(t, a.Equals(nil))

	var nilStudent *Student
	assert.False(t, nilStudent.Equals(a))

	// a separate sequence may reproduce the id, which is what identity means here
	twin, _ := NewStudent(shared.NewSequence(), NewStudentParams{Name: "Other", Email: "o@x", Address: "Elsewhere"})
	assert.True(t, a.Equals(twin))
}

func TestStudent_Matchers(t *testing.T) {
	s, _ := NewStudent(shared.NewSequence(), NewStudentParams{Name: "Anna", Email: "erik@test.com", Address: "x"})

	assert.True(t, s.HasName("ANNA"))
	assert.True(t, s.HasName(" anna "))
	assert.False(t, s.HasName("Ann"))
	assert.True(t, s.HasEmail("ERIK@TEST.COM"))
	assert.False(t, s.HasEmail("erik@test"))
}

func TestIndexOf(t *testing.T) {
	ids := shared.NewSequence()
	a, _ := NewStudent(ids, validParams())
	b, _ := NewStudent(ids, validParams())
	c, _ := NewStudent(ids, validParams())

	list := []*Student{a, b}
	assert.Equal(t, 0, IndexOf(list, a))
	assert.Equal(t, 1, IndexOf(list, b))
	assert.Equal(t, -1, IndexOf(list, c))
	assert.Equal(t, -1, IndexOf(list, nil))
}
