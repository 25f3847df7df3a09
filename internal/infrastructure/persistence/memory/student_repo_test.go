package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/shared"
	"github.com/BoKalebsson/G56-SchoolManagement-workshop/internal/domain/student"
)

func mustStudent(t *testing.T, ids shared.IDSource, name, email string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(ids, student.NewStudentParams{
		Name:    name,
		Email:   email,
		Address: "Storgatan 37",
	})
	require.NoError(t, err)
	return s
}

func TestStudentRepository_SaveAndFindByID(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	erik := mustStudent(t, ids, "Erik", "erik@student.nu")

	saved, err := repo.Save(erik)
	require.NoError(t, err)
	assert.Same(t, erik, saved)
	assert.Equal(t, 1, saved.ID(), "save must not reassign ids")

	found, err := repo.FindByID(erik.ID())
	require.NoError(t, err)
	assert.True(t, found.Equals(erik))
}

func TestStudentRepository_SaveNil(t *testing.T) {
	_, err := NewStudentRepository().Save(nil)
	assert.True(t, shared.IsValidation(err))
}

func TestStudentRepository_SaveDuplicateIdentity(t *testing.T) {
	repo := NewStudentRepository()
	erik := mustStudent(t, shared.NewSequence(), "Erik", "erik@student.nu")
	_, err := repo.Save(erik)
	require.NoError(t, err)

	_, err = repo.Save(erik)
	assert.True(t, shared.IsAlreadyExists(err))
	assert.ErrorIs(t, err, shared.ErrStudentAlreadyExists)

	// another entity carrying the same id is the same student
	twin := mustStudent(t, shared.NewSequence(), "Someone", "someone@else.nu")
	_, err = repo.Save(twin)
	assert.ErrorIs(t, err, shared.ErrStudentAlreadyExists)
	assert.Equal(t, 1, repo.Count())
}

func TestStudentRepository_SaveDuplicateEmail(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	a := mustStudent(t, ids, "Erik", "erik@student.nu")
	b := mustStudent(t, ids, "Erik Two", "ERIK@student.NU")

	_, err := repo.Save(a)
	require.NoError(t, err)

	_, err = repo.Save(b)
	assert.True(t, shared.IsAlreadyExists(err))
	assert.ErrorIs(t, err, shared.ErrStudentEmailTaken)
	assert.Len(t, repo.FindAll(), 1)
}

func TestStudentRepository_FindByID(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	_, err := repo.Save(mustStudent(t, ids, "Erik", "erik@student.nu"))
	require.NoError(t, err)

	missing, err := repo.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, missing)

	for _, id := range []int{0, -5} {
		_, err := repo.FindByID(id)
		assert.True(t, shared.IsValidation(err), "id %d", id)
	}
}

func TestStudentRepository_FindByEmail(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	erik := mustStudent(t, ids, "Erik", "erik@test.com")
	_, err := repo.Save(erik)
	require.NoError(t, err)

	found, err := repo.FindByEmail("ERIK@TEST.COM")
	require.NoError(t, err)
	assert.True(t, found.Equals(erik))

	found, err = repo.FindByEmail("  erik@test.com  ")
	require.NoError(t, err)
	assert.True(t, found.Equals(erik))

	missing, err := repo.FindByEmail("anna@test.com")
	require.NoError(t, err)
	assert.Nil(t, missing)

	for _, email := range []string{"", "   "} {
		_, err := repo.FindByEmail(email)
		assert.True(t, shared.IsValidation(err))
	}
}

func TestStudentRepository_FindByName(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	anna1 := mustStudent(t, ids, "Anna", "anna1@student.nu")
	erik := mustStudent(t, ids, "Erik", "erik@student.nu")
	anna2 := mustStudent(t, ids, "anna", "anna2@student.nu")
	annika := mustStudent(t, ids, "Annika", "annika@student.nu")
	for _, s := range []*student.Student{anna1, erik, anna2, annika} {
		_, err := repo.Save(s)
		require.NoError(t, err)
	}

	found, err := repo.FindByName("ANNA")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.True(t, found[0].Equals(anna1))
	assert.True(t, found[1].Equals(anna2))

	none, err := repo.FindByName("Ann")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = repo.FindByName(" ")
	assert.True(t, shared.IsValidation(err))
}

func TestStudentRepository_FindAllSnapshot(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	erik := mustStudent(t, ids, "Erik", "erik@student.nu")
	anna := mustStudent(t, ids, "Anna", "anna@student.nu")
	_, _ = repo.Save(erik)
	_, _ = repo.Save(anna)

	all := repo.FindAll()
	require.Len(t, all, 2)
	assert.True(t, all[0].Equals(erik))
	assert.True(t, all[1].Equals(anna))

	all[0] = nil
	_ = append(all[:1], anna)
	assert.True(t, repo.FindAll()[0].Equals(erik))
	assert.Equal(t, 2, repo.Count())
}

func TestStudentRepository_Delete(t *testing.T) {
	repo := NewStudentRepository()
	ids := shared.NewSequence()
	erik := mustStudent(t, ids, "Erik", "erik@student.nu")
	anna := mustStudent(t, ids, "Anna", "anna@student.nu")
	_, _ = repo.Save(erik)
	_, _ = repo.Save(anna)

	removed, err := repo.Delete(erik)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, -1, student.IndexOf(repo.FindAll(), erik))

	removed, err = repo.Delete(erik)
	require.NoError(t, err)
	assert.False(t, removed)

	neverSaved := mustStudent(t, ids, "Lars", "lars@student.nu")
	removed, err = repo.Delete(neverSaved)
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = repo.Delete(nil)
	assert.True(t, shared.IsValidation(err))

	// the freed email can be used again
	_, err = repo.Save(mustStudent(t, ids, "Erik", "erik@student.nu"))
	assert.NoError(t, err)
}
