package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/samandr77/microservices/csob/docs" // swagger docs
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)
		r.HandleFunc("/swagger/*", httpSwagger.Handler())

		r.Route("/payments", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)
			r.Post("/", h.CreatePayment)
			r.Post("/signature-string", h.SignatureString)
		})
	})

	return mux
}
