package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"students_service/internal/domain"
	"students_service/internal/domain/entity"
	"students_service/internal/infrastructure/persistence"
	"students_service/pkg/errcodes"
)

func ptr(v int64) *int64 {
	return &v
}

func TestMemoryStudentRepositorySave(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewMemoryStudentRepository()

	// Новый студент без идентификатора получает его от хранилища.
	saved, err := repo.Save(ctx, &entity.Student{FirstName: "Euni", LastName: "Wyan", Year: 2018})
	rq.NoError(err)
	rq.NotNil(saved.ID)
	rq.Equal(int64(1), *saved.ID)

	got, err := repo.GetByID(ctx, *saved.ID)
	rq.NoError(err)
	rq.Equal(saved, got)

	// Повторное сохранение с идентификатором обновляет запись.
	saved.Year = 2019

	updated, err := repo.Save(ctx, saved)
	rq.NoError(err)
	rq.Equal(*saved.ID, *updated.ID)

	got, err = repo.GetByID(ctx, *saved.ID)
	rq.NoError(err)
	rq.Equal(2019, got.Year)
}

func TestMemoryStudentRepositoryGetByIDNotFound(t *testing.T) {
	rq := require.New(t)

	repo := persistence.NewMemoryStudentRepository()

	got, err := repo.GetByID(context.Background(), 404)
	rq.Nil(got)
	rq.True(domain.HasCode(err, errcodes.StudentNotFound))
}

func TestMemoryStudentRepositoryExists(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewMemoryStudentRepository()

	exists, err := repo.Exists(ctx, 1)
	rq.NoError(err)
	rq.False(exists)

	_, err = repo.Save(ctx, &entity.Student{FirstName: "John", LastName: "Doe", Year: 2024})
	rq.NoError(err)

	exists, err = repo.Exists(ctx, 1)
	rq.NoError(err)
	rq.True(exists)
}

func TestMemoryStudentRepositoryNoAliasing(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	repo := persistence.NewMemoryStudentRepository()

	original := &entity.Student{ID: ptr(7), FirstName: "Euni", LastName: "Wyan", Year: 2018}

	saved, err := repo.Save(ctx, original)
	rq.NoError(err)

	// Мутация входа и выхода не должна задевать содержимое хранилища.
	original.FirstName = "Changed"
	saved.LastName = "Changed"

	got, err := repo.GetByID(ctx, 7)
	rq.NoError(err)
	rq.Equal("Euni", got.FirstName)
	rq.Equal("Wyan", got.LastName)
}
