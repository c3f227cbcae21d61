// Package mapper конвертирует студентов между внутренним (entity) и
// транспортным (rest) представлениями. Оба типа независимы: ни entity не
// знает про rest, ни наоборот — соответствие полей зафиксировано только
// здесь. Маппер не хранит состояние, безопасен для конкурентного
// использования и всегда возвращает новые значения, не трогая вход.
package mapper

import (
	"git.appkode.ru/pub/go/failure"

	"students_service/internal/domain/entity"
	"students_service/pkg/errcodes"
	"students_service/pkg/lox"
	"students_service/pkg/rest"
)

// ToTransfer строит rest.Student по entity.Student. Отсутствующий
// идентификатор (nil) остаётся отсутствующим, а не превращается в ноль.
func ToTransfer(student *entity.Student) (*rest.Student, error) {
	if student == nil {
		return nil, failure.NewInvalidArgumentError(
			"nil student entity",
			failure.WithCode(errcodes.InvalidStudent),
			failure.WithDescription("student entity must not be nil"),
		)
	}

	return &rest.Student{
		ID:        cloneID(student.ID),
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Year:      student.Year,
	}, nil
}

// ToPersistence — обратное преобразование, с тем же контрактом.
func ToPersistence(student *rest.Student) (*entity.Student, error) {
	if student == nil {
		return nil, failure.NewInvalidArgumentError(
			"nil student dto",
			failure.WithCode(errcodes.InvalidStudent),
			failure.WithDescription("student dto must not be nil"),
		)
	}

	return &entity.Student{
		ID:        cloneID(student.ID),
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Year:      student.Year,
	}, nil
}

// ToTransferAll конвертирует срез целиком; ошибка на любом элементе
// отменяет весь результат.
func ToTransferAll(students []*entity.Student) ([]*rest.Student, error) {
	return lox.MapErr(students, ToTransfer)
}

// cloneID копирует идентификатор по значению, чтобы вход и выход не
// разделяли память.
func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}

	v := *id

	return &v
}
