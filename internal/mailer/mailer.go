// Package mailer sends reservation lifecycle emails. The interface keeps the
// engine listeners and the HTTP layer independent of the transport.
package mailer

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}
