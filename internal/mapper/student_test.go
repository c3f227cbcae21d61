package mapper_test

import (
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"students_service/internal/domain/entity"
	"students_service/internal/mapper"
	"students_service/pkg/rest"
	"students_service/pkg/tests"
)

func ptr(v int64) *int64 {
	return &v
}

func TestToTransfer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		student *entity.Student
		want    *rest.Student
	}{
		{
			name:    "All fields set",
			student: &entity.Student{ID: ptr(123), FirstName: "Euni", LastName: "Wyan", Year: 2018},
			want:    &rest.Student{ID: ptr(123), FirstName: "Euni", LastName: "Wyan", Year: 2018},
		},
		{
			name:    "Absent identifier stays absent",
			student: &entity.Student{FirstName: "John", LastName: "Doe", Year: 2024},
			want:    &rest.Student{FirstName: "John", LastName: "Doe", Year: 2024},
		},
		{
			name:    "Zero values",
			student: &entity.Student{},
			want:    &rest.Student{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := mapper.ToTransfer(tc.student)
			rq.NoError(err)
			rq.Equal(tc.want, got)
		})
	}
}

func TestToTransferNil(t *testing.T) {
	rq := require.New(t)

	got, err := mapper.ToTransfer(nil)
	rq.Nil(got)
	rq.True(failure.IsInvalidArgumentError(err))
}

func TestToPersistenceNil(t *testing.T) {
	rq := require.New(t)

	got, err := mapper.ToPersistence(nil)
	rq.Nil(got)
	rq.True(failure.IsInvalidArgumentError(err))
}

func TestRoundTrip(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	for range 100 {
		student := &entity.Student{
			ID:        ptr(random.Int64()),
			FirstName: random.String(8),
			LastName:  random.String(12),
			Year:      2000 + random.IntN(30),
		}

		dto, err := mapper.ToTransfer(student)
		rq.NoError(err)

		back, err := mapper.ToPersistence(dto)
		rq.NoError(err)

		rq.Equal(student, back)
	}
}

func TestRoundTripInverse(t *testing.T) {
	rq := require.New(t)

	dto := &rest.Student{ID: ptr(123), FirstName: "Euni", LastName: "Wyan", Year: 2018}

	student, err := mapper.ToPersistence(dto)
	rq.NoError(err)

	back, err := mapper.ToTransfer(student)
	rq.NoError(err)

	rq.Equal(dto, back)
}

func TestFieldIndependence(t *testing.T) {
	rq := require.New(t)

	student := &entity.Student{ID: ptr(123), FirstName: "Euni", LastName: "Wyan", Year: 2018}

	dto, err := mapper.ToTransfer(student)
	rq.NoError(err)

	// Мутация результата не должна задевать вход.
	*dto.ID = 999
	dto.FirstName = "Changed"
	dto.Year = 1999

	rq.Equal(int64(123), *student.ID)
	rq.Equal("Euni", student.FirstName)
	rq.Equal(2018, student.Year)
}

func TestToTransferAll(t *testing.T) {
	rq := require.New(t)

	students := []*entity.Student{
		{ID: ptr(1), FirstName: "A", LastName: "B", Year: 2020},
		{ID: ptr(2), FirstName: "C", LastName: "D", Year: 2021},
	}

	dtos, err := mapper.ToTransferAll(students)
	rq.NoError(err)
	rq.Len(dtos, 2)
	rq.Equal(int64(1), *dtos[0].ID)
	rq.Equal(int64(2), *dtos[1].ID)

	_, err = mapper.ToTransferAll([]*entity.Student{students[0], nil})
	rq.True(failure.IsInvalidArgumentError(err))
}
