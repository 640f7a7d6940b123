package reservation

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

type EventKind string

const (
	EventReservationCreated   EventKind = "reservationCreated"
	EventReservationConfirmed EventKind = "reservationConfirmed"
	EventReservationCancelled EventKind = "reservationCancelled"
)

// Event describes a reservation lifecycle transition. The reservation pointer
// is the live record, not a copy; listeners must treat it as read-only.
type Event struct {
	Kind        EventKind
	Reservation *domain.Reservation
	At          time.Time
}

type Listener interface {
	HandleReservationEvent(Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) HandleReservationEvent(e Event) {
	f(e)
}

type registration struct {
	token    int
	listener Listener
}

// dispatcher delivers events synchronously, in registration order. A
// panicking listener is recovered and logged so it cannot block delivery to
// the listeners behind it or abort the operation that emitted the event.
type dispatcher struct {
	mu        sync.Mutex
	nextToken int
	listeners map[EventKind][]registration
	logger    *slog.Logger
}

func newDispatcher(logger *slog.Logger) *dispatcher {
	return &dispatcher{
		nextToken: 1,
		listeners: make(map[EventKind][]registration),
		logger:    logger,
	}
}

func (d *dispatcher) on(kind EventKind, l Listener) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	token := d.nextToken
	d.nextToken++

	d.listeners[kind] = append(d.listeners[kind], registration{token: token, listener: l})

	return token
}

func (d *dispatcher) off(kind EventKind, token int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.listeners[kind]

	for i, reg := range regs {
		if reg.token == token {
			d.listeners[kind] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

func (d *dispatcher) emit(evt Event) {
	d.mu.Lock()
	regs := make([]registration, len(d.listeners[evt.Kind]))
	copy(regs, d.listeners[evt.Kind])
	d.mu.Unlock()

	for _, reg := range regs {
		d.deliver(reg.listener, evt)
	}
}

func (d *dispatcher) deliver(l Listener, evt Event) {
	defer func() {
		if p := recover(); p != nil {
			d.logger.Error("reservation event listener panicked",
				"event", string(evt.Kind),
				"reservation_id", evt.Reservation.ID,
				"panic", p,
			)
		}
	}()

	l.HandleReservationEvent(evt)
}
