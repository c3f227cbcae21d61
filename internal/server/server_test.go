package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	service "students_service/internal/domain/service/student"
	"students_service/internal/infrastructure/persistence"
	"students_service/internal/server"
	"students_service/pkg/logx"
	"students_service/pkg/middlewarex"
	"students_service/pkg/rest"
	"students_service/pkg/tests"
)

const testLogFieldMaxLen = 2048

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := service.NewService(persistence.NewMemoryStudentRepository())
	srv := server.NewServer(server.NewStudentServer(svc))

	masker := logx.NewSensitiveDataMasker()

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, testLogFieldMaxLen),
		middlewarex.ResponseLogging(masker, testLogFieldMaxLen),
	)
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return httpServer
}

func TestPostAndGetStudent(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var created rest.Student

	resp, err := client.Post(
		ctx,
		"/v1/students",
		http.Header{},
		rest.Student{FirstName: "Euni", LastName: "Wyan", Year: 2018},
		&created,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.NotNil(created.ID)
	rq.Equal("Euni", created.FirstName)
	rq.Equal("Wyan", created.LastName)
	rq.Equal(2018, created.Year)

	var fetched rest.Student

	resp, err = client.Get(
		ctx,
		"/v1/students/1",
		http.Header{},
		&fetched,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(created, fetched)
}

func TestGetStudentNotFound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var errResp rest.Error

	resp, err := client.Get(ctx, "/v1/students/404", http.Header{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("StudentNotFound"), errResp.Code)
}

func TestGetStudentInvalidID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var errResp rest.Error

	resp, err := client.Get(ctx, "/v1/students/abc", http.Header{}, nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("InvalidStudentID"), errResp.Code)
}

func TestPostStudentInvalidJSON(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var errResp rest.Error

	resp, err := client.PostJSON(ctx, "/v1/students", http.Header{}, "{not json", nil, &errResp)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("ValidationError"), errResp.Code)
}

func TestPostStudentKeepsClientID(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	httpServer := newTestServer(t)
	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	id := int64(123)

	var created rest.Student

	resp, err := client.Post(
		ctx,
		"/v1/students",
		http.Header{},
		rest.Student{ID: &id, FirstName: "Euni", LastName: "Wyan", Year: 2018},
		&created,
		nil,
	)
	rq.NoError(err)
	rq.Equal(http.StatusCreated, resp.StatusCode)
	rq.NotNil(created.ID)
	rq.Equal(id, *created.ID)

	var fetched rest.Student

	resp, err = client.Get(ctx, "/v1/students/123", http.Header{}, &fetched, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(created, fetched)
}
