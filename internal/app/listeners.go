package app

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"

	"github.com/rexstudios-dev/venue-reservation-system/internal/reservation"
)

// registerListeners hooks cross-cutting behavior into the reservation
// lifecycle: audit logging, metric counters, and the confirmation email.
func (app *application) registerListeners() {
	kinds := []reservation.EventKind{
		reservation.EventReservationCreated,
		reservation.EventReservationConfirmed,
		reservation.EventReservationCancelled,
	}

	for _, kind := range kinds {
		app.system.On(kind, app.auditListener())
	}

	counter, err := otel.Meter("venue-reservation-api").Int64Counter(
		"reservations.lifecycle.events",
		otelmetric.WithDescription("Count of reservation lifecycle transitions"),
	)
	if err != nil {
		app.logger.Error("failed to create reservation event counter", "error", err)
	} else {
		for _, kind := range kinds {
			app.system.On(kind, metricsListener(counter))
		}
	}

	app.system.On(reservation.EventReservationConfirmed, app.confirmationMailListener())
}

func (app *application) auditListener() reservation.Listener {
	return reservation.ListenerFunc(func(evt reservation.Event) {
		app.logger.Info("reservation event",
			"kind", evt.Kind,
			"reservationID", evt.Reservation.ID,
			"items", strings.Join(evt.Reservation.ItemIDs, ","),
			"status", evt.Reservation.Status,
		)
	})
}

func metricsListener(counter otelmetric.Int64Counter) reservation.Listener {
	return reservation.ListenerFunc(func(evt reservation.Event) {
		counter.Add(context.Background(), 1,
			otelmetric.WithAttributes(attribute.String("kind", string(evt.Kind))))
	})
}

// confirmationMailListener emails the customer once their reservation is
// confirmed. Send failures are logged, never surfaced to the caller.
func (app *application) confirmationMailListener() reservation.Listener {
	return reservation.ListenerFunc(func(evt reservation.Event) {
		res := evt.Reservation
		if res.Customer.Email == "" {
			return
		}

		data := map[string]any{
			"Name":          res.Customer.Name,
			"ReservationID": res.ID,
			"Items":         strings.Join(res.ItemIDs, ", "),
			"StartTime":     res.StartTime.Format("Mon, 02 Jan 2006 15:04"),
			"EndTime":       res.EndTime.Format("Mon, 02 Jan 2006 15:04"),
		}

		err := app.mailer.Send(res.Customer.Email, "reservation_confirmed.tmpl", data)
		if err != nil {
			app.logger.Error("failed to send confirmation email",
				"reservationID", res.ID, "error", err)
		}
	})
}
