package app

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rexstudios-dev/venue-reservation-system/internal/render"
)

func (app *application) getVenue(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, app.system.Venue(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getVenueSVG(w http.ResponseWriter, r *http.Request) {
	opts := render.DefaultSVGOptions()

	if v := r.URL.Query().Get("labels"); v != "" {
		opts.ShowLabels, _ = strconv.ParseBool(v)
	}
	if v := r.URL.Query().Get("zones"); v != "" {
		opts.ShowZones, _ = strconv.ParseBool(v)
	}
	if v := r.URL.Query().Get("legend"); v != "" {
		opts.ShowLegend, _ = strconv.ParseBool(v)
	}

	svg := render.SVG(app.system.Venue(), opts)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(svg))
}

func (app *application) getVenueText(w http.ResponseWriter, r *http.Request) {
	cols := 80
	if v := r.URL.Query().Get("cols"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cols = n
		}
	}

	out := render.Text(app.system.Venue(), cols)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(out))
}

type itemAvailabilityResponse struct {
	ItemId    string    `json:"itemId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

func (app *application) getItemAvailability(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")

	if app.system.Venue().ItemByID(itemID) == nil {
		app.notFoundResponse(w, r)
		return
	}

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

	resp := itemAvailabilityResponse{
		ItemId:    itemID,
		StartTime: start,
		EndTime:   end,
		Available: app.service.IsItemAvailableForTimeRange(itemID, start, end),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func parseTimeParam(r *http.Request, name string) (time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return time.Time{}, fmt.Errorf("query parameter %q is required", name)
	}

	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("query parameter %q must be an RFC 3339 timestamp", name)
	}

	return t, nil
}
