package server

import (
	"git.appkode.ru/pub/go/failure"

	"students_service/internal/domain"
	"students_service/pkg/errcodes"
)

// asFailure переводит доменные ошибки в транспортные, чтобы reply.Error
// выбрал правильный HTTP статус.
func asFailure(err error) error {
	if domain.HasCode(err, errcodes.StudentNotFound) {
		return failure.NewNotFoundError(
			err.Error(),
			failure.WithCode(errcodes.StudentNotFound),
			failure.WithDescription("Student not found"),
		)
	}

	return err
}
