package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("seat-inventory-api", otelchi.WithChiRoutes(r)))

	r.Get("/health", app.GetHealth)

	r.Route("/movies", func(r chi.Router) {
		r.Get("/", app.GetMovies)
		r.Post("/", app.CreateMovie)

		r.Route("/{movieID}/shows", func(r chi.Router) {
			r.Get("/", app.GetShowsOfMovie)
			r.Post("/", app.CreateShow)
		})
	})

	r.Route("/shows/{showID}", func(r chi.Router) {
		r.Get("/availability", app.GetAvailability)
		r.Get("/events", app.GetShowEvents)
		r.Post("/bookings", app.BookSeats)
		r.Post("/cancellations", app.CancelSeats)
		r.Post("/reconcile", app.ReconcileShow)
	})

	return r
}
