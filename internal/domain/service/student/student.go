package student

import (
	"context"
	"fmt"
	"log/slog"

	"students_service/internal/domain/entity"
	"students_service/pkg/contextx"
	"students_service/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// StudentRepository — минимальный контракт хранилища: получить по
// идентификатору и сохранить. Save возвращает сохранённую форму — для
// нового студента в ней появляется идентификатор, выданный хранилищем.
type StudentRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Student, error)
	Save(ctx context.Context, student *entity.Student) (*entity.Student, error)
}

type Service struct {
	repo StudentRepository
}

func NewService(repo StudentRepository) *Service {
	return &Service{
		repo: repo,
	}
}

// GetByID возвращает студента; отсутствующий идентификатор хранилища
// всплывает к вызывающему без изменений.
func (s *Service) GetByID(ctx context.Context, id int64) (*entity.Student, error) {
	student, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("repo.GetByID: %w", err)
	}

	return student, nil
}

// Save сохраняет студента и возвращает сохранённую форму.
func (s *Service) Save(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	saved, err := s.repo.Save(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("repo.Save: %w", err)
	}

	logger(ctx).Info(
		"student saved",
		slog.Int64(logx.FieldStudentID, *saved.ID),
	)

	return saved, nil
}
