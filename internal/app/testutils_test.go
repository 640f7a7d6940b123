package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rexstudios-dev/venue-reservation-system/internal/layout"
	"github.com/rexstudios-dev/venue-reservation-system/internal/mailer"
	"github.com/rexstudios-dev/venue-reservation-system/internal/render"
	"github.com/rexstudios-dev/venue-reservation-system/internal/reservation"
	"github.com/rexstudios-dev/venue-reservation-system/internal/validator"
)

func newTestApplication(opts ...func(*application)) *application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	system := reservation.NewSystem(
		layout.Grid(layout.GridOptions{Rows: 2, Columns: 2}),
		reservation.DefaultSettings(),
		logger,
	)

	app := &application{
		config:    config{env: "test"},
		logger:    logger,
		validator: validator.NewValidator(),
		system:    system,
		service:   system,
		mailer:    mailer.NewMockMailer(),
		tickets:   render.NewTicketGenerator("test-secret"),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, app *application, method, url string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	app.routes().ServeHTTP(w, r)

	return w
}

func decodeResponse[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	return v
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if w.Code != wantStatus {
		t.Errorf("Status = %d, want %d", w.Code, wantStatus)
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if wantErrMessage == "" {
			return
		}

		// Engine rejections use the plain envelope even at 422.
		if len(validationResp.ValidationErrors) == 0 {
			if validationResp.Message != wantErrMessage {
				t.Errorf("Error message = %v, want %v", validationResp.Message, wantErrMessage)
			}
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message %q not found in response", wantErrMessage)
		}

	default:
		var errorResp ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
