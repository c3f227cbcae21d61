package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"students_service/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/students", func(r chi.Router) {
				r.Post("/", handler(s.postV1Student))
				r.Get("/{id}", handler(s.getV1Student))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
