package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.getHealth)

	r.Route("/venue", func(r chi.Router) {
		r.Get("/", app.getVenue)
		r.Get("/map.svg", app.getVenueSVG)
		r.Get("/map.txt", app.getVenueText)
		r.Get("/items/{itemID}/availability", app.getItemAvailability)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", app.listReservations)
		r.Post("/", app.createReservation)

		r.Route("/{reservationID}", func(r chi.Router) {
			r.Get("/", app.getReservation)
			r.Delete("/", app.cancelReservation)
			r.Post("/confirm", app.confirmReservation)
			r.Get("/ticket.png", app.getReservationTicket)
		})
	})

	return r
}
