package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"students_service/internal/domain/entity"
	"students_service/internal/mapper"
	"students_service/pkg/errcodes"
	"students_service/pkg/httpx/reply"
	"students_service/pkg/httpx/req"
	"students_service/pkg/rest"
)

type studentService interface {
	GetByID(context.Context, int64) (*entity.Student, error)
	Save(context.Context, *entity.Student) (*entity.Student, error)
}

type StudentServer struct {
	studentService studentService
}

func NewStudentServer(studentService studentService) StudentServer {
	return StudentServer{
		studentService: studentService,
	}
}

func (s StudentServer) getV1Student(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.ParseInt: %w", err),
			failure.WithCode(errcodes.InvalidStudentID),
		)
	}

	student, err := s.studentService.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("studentService.GetByID: %w", asFailure(err))
	}

	dto, err := mapper.ToTransfer(student)
	if err != nil {
		return fmt.Errorf("mapper.ToTransfer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, dto)

	return nil
}

func (s StudentServer) postV1Student(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.Student

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	student, err := mapper.ToPersistence(&request)
	if err != nil {
		return fmt.Errorf("mapper.ToPersistence: %w", err)
	}

	saved, err := s.studentService.Save(ctx, student)
	if err != nil {
		return fmt.Errorf("studentService.Save: %w", asFailure(err))
	}

	dto, err := mapper.ToTransfer(saved)
	if err != nil {
		return fmt.Errorf("mapper.ToTransfer: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, dto)

	return nil
}
