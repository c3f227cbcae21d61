package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"students_service/internal/domain"
	"students_service/internal/domain/entity"
	"students_service/pkg/errcodes"
)

type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository создаёт новый экземпляр репозитория.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *StudentRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// GetByID возвращает студента по идентификатору.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*entity.Student, error) {
	query := `
		SELECT student_id, first_name, last_name, year
		FROM students
		WHERE student_id = $1`

	var schema studentSchema
	if err := r.db.GetContext(ctx, &schema, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(errcodes.StudentNotFound, "student not found")
		}
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to get student")
	}

	return schema.toDomain(), nil
}

// Save сохраняет студента и возвращает сохранённую форму. Студент без
// идентификатора вставляется, база выдаёт новый ID; студент с
// идентификатором вставляется либо обновляется.
func (r *StudentRepository) Save(ctx context.Context, student *entity.Student) (*entity.Student, error) {
	schema := fromStudent(student)

	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		if schema.ID == nil {
			return r.insertTx(ctx, tx, schema)
		}
		return r.upsertTx(ctx, tx, schema)
	})
	if err != nil {
		return nil, err
	}

	return schema.toDomain(), nil
}

// insertTx — вставка без идентификатора, ID выдаёт база.
func (r *StudentRepository) insertTx(ctx context.Context, tx *sqlx.Tx, schema *studentSchema) error {
	query := `
		INSERT INTO students (first_name, last_name, year)
		VALUES ($1, $2, $3)
		RETURNING student_id`

	var id int64
	if err := tx.GetContext(ctx, &id, query, schema.FirstName, schema.LastName, schema.Year); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to insert student")
	}

	schema.ID = &id

	return nil
}

// upsertTx — вставка или обновление по существующему идентификатору.
func (r *StudentRepository) upsertTx(ctx context.Context, tx *sqlx.Tx, schema *studentSchema) error {
	query := `
		INSERT INTO students (student_id, first_name, last_name, year)
		VALUES (:student_id, :first_name, :last_name, :year)
		ON CONFLICT (student_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name  = EXCLUDED.last_name,
		    year       = EXCLUDED.year`

	if _, err := tx.NamedExecContext(ctx, query, schema); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to upsert student")
	}

	return nil
}

// Exists проверяет наличие студента.
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE student_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "failed to check student existence")
	}

	return exists, nil
}
