package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

type createReservationRequest struct {
	ItemIds   []string          `json:"itemIds" validate:"required,min=1"`
	Customer  domain.Customer   `json:"customer"`
	StartTime time.Time         `json:"startTime" validate:"required"`
	EndTime   time.Time         `json:"endTime" validate:"required"`
	Metadata  map[string]string `json:"metadata"`
}

func (app *application) createReservation(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	res, err := app.service.CreateReservation(req.ItemIds, req.Customer, req.StartTime, req.EndTime, req.Metadata)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/reservations/%s", res.ID))

	err = app.writeJSON(w, http.StatusCreated, res, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reservationID")

	res, err := app.service.ReservationByID(id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) confirmReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reservationID")

	res, err := app.service.ConfirmReservation(id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) cancelReservation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reservationID")

	res, err := app.service.CancelReservation(id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, res, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type reservationsResponse struct {
	Reservations []*domain.Reservation `json:"reservations"`
}

// listReservations filters by at most one dimension: customerId, itemId, or a
// start/end window. With no filters it returns every reservation.
func (app *application) listReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var reservations []*domain.Reservation

	switch {
	case query.Get("customerId") != "":
		reservations = app.service.ReservationsByCustomer(query.Get("customerId"))

	case query.Get("itemId") != "":
		reservations = app.service.ReservationsForItem(query.Get("itemId"))

	case query.Get("start") != "" || query.Get("end") != "":
		start, err := parseTimeParam(r, "start")
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		end, err := parseTimeParam(r, "end")
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}

		reservations = app.service.ReservationsInTimeRange(start, end)

	default:
		reservations = app.system.Reservations()
	}

	if reservations == nil {
		reservations = []*domain.Reservation{}
	}

	err := app.writeJSON(w, http.StatusOK, reservationsResponse{Reservations: reservations}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getReservationTicket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "reservationID")

	res, err := app.service.ReservationByID(id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	if res.Status != domain.ReservationConfirmed {
		app.conflictResponse(w, r, fmt.Errorf("reservation %s is not confirmed", id))
		return
	}

	png, err := app.tickets.TicketPNG(res)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
