package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
	"github.com/rexstudios-dev/venue-reservation-system/internal/mailer"
)

func TestConfirmationEmailSentOnConfirm(t *testing.T) {
	app := newTestApplication()
	app.registerListeners()

	mockMailer := app.mailer.(*mailer.MockMailer)

	w := executeRequest(t, app, http.MethodPost, "/reservations", validCreateRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeResponse[domain.Reservation](t, w)

	assert.Empty(t, mockMailer.GetSentEmails())

	w = executeRequest(t, app, http.MethodPost, "/reservations/"+created.ID+"/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	emails := mockMailer.GetSentEmails()
	require.Len(t, emails, 1)
	assert.Equal(t, "ada@example.com", emails[0].Recipient)
	assert.Equal(t, "reservation_confirmed.tmpl", emails[0].TemplateFile)
}

func TestNoEmailOnCancel(t *testing.T) {
	app := newTestApplication()
	app.registerListeners()

	mockMailer := app.mailer.(*mailer.MockMailer)

	w := executeRequest(t, app, http.MethodPost, "/reservations", validCreateRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeResponse[domain.Reservation](t, w)

	w = executeRequest(t, app, http.MethodDelete, "/reservations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Empty(t, mockMailer.GetSentEmails())
}
