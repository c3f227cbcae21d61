package persistence

import (
	"context"
	"sync"

	"students_service/internal/domain"
	"students_service/internal/domain/entity"
	"students_service/pkg/errcodes"
)

// MemoryStudentRepository — хранилище в памяти для локального запуска и
// тестов (STORAGE_DRIVER=memory). Хранит и отдаёт копии, чтобы записи
// репозитория и значения вызывающего кода не разделяли память.
type MemoryStudentRepository struct {
	mu       sync.RWMutex
	students map[int64]entity.Student
	nextID   int64
}

func NewMemoryStudentRepository() *MemoryStudentRepository {
	return &MemoryStudentRepository{
		students: make(map[int64]entity.Student),
		nextID:   1,
	}
}

func (r *MemoryStudentRepository) GetByID(_ context.Context, id int64) (*entity.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	student, ok := r.students[id]
	if !ok {
		return nil, domain.NewError(errcodes.StudentNotFound, "student not found")
	}

	student.ID = &id

	return &student, nil
}

func (r *MemoryStudentRepository) Save(_ context.Context, student *entity.Student) (*entity.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *student

	var id int64
	if saved.ID == nil {
		id = r.nextID
		r.nextID++
	} else {
		id = *saved.ID
		if id >= r.nextID {
			r.nextID = id + 1
		}
	}

	saved.ID = nil
	r.students[id] = saved

	saved.ID = &id

	return &saved, nil
}

func (r *MemoryStudentRepository) Exists(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.students[id]

	return ok, nil
}
