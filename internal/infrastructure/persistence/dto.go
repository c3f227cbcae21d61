package persistence

import (
	"students_service/internal/domain/entity"
)

// studentSchema — внутренняя структура для маппинга строки таблицы students.
type studentSchema struct {
	ID        *int64 `db:"student_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Year      int    `db:"year"`
}

func fromStudent(e *entity.Student) *studentSchema {
	return &studentSchema{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Year:      e.Year,
	}
}

func (s *studentSchema) toDomain() *entity.Student {
	return &entity.Student{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Year:      s.Year,
	}
}
