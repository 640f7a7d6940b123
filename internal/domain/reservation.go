package domain

import "time"

// Customer identifies who holds a reservation. Name and a contact email are
// required; everything else is optional.
type Customer struct {
	ID    string `json:"id,omitempty" validate:"omitempty,max=64"`
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,phone"`
}

// HasContact reports whether the minimum required customer fields are set.
// Full syntactic validation happens at the API boundary; the engine only
// insists on a name and a contact identifier.
func (c Customer) HasContact() bool {
	return c.Name != "" && c.Email != ""
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationCancelled:
		return true
	}

	return false
}

// CanTransitionTo encodes the legal lifecycle moves: pending may become
// confirmed or cancelled, confirmed may only become cancelled, and cancelled
// is terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	switch s {
	case ReservationPending:
		return next == ReservationConfirmed || next == ReservationCancelled
	case ReservationConfirmed:
		return next == ReservationCancelled
	}

	return false
}

// Reservation binds a set of items, a customer, and a half-open time interval
// [StartTime, EndTime). Reservations are never deleted; cancelled ones stay
// in the log for audit and queries.
type Reservation struct {
	ID        string            `json:"id"`
	ItemIDs   []string          `json:"itemIds"`
	Customer  Customer          `json:"customer"`
	StartTime time.Time         `json:"startTime"`
	EndTime   time.Time         `json:"endTime"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	ExpiresAt time.Time         `json:"expiresAt,omitzero"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// IsExpired reports whether a pending reservation's hold has lapsed. A zero
// ExpiresAt means the reservation never expires.
func (r *Reservation) IsExpired(now time.Time) bool {
	if r.ExpiresAt.IsZero() {
		return false
	}

	return now.After(r.ExpiresAt)
}

func (r *Reservation) HasItem(itemID string) bool {
	for _, id := range r.ItemIDs {
		if id == itemID {
			return true
		}
	}

	return false
}

// Overlaps applies the half-open interval intersection rule: [s1,e1) and
// [s2,e2) intersect iff s1 < e2 and s2 < e1. Back-to-back slots sharing a
// boundary instant do not overlap.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && start.Before(r.EndTime)
}

// ReservationService is the engine surface the HTTP layer depends on. The
// in-memory implementation lives in internal/reservation.
type ReservationService interface {
	CreateReservation(itemIDs []string, customer Customer, start, end time.Time, metadata map[string]string) (*Reservation, error)
	ConfirmReservation(id string) (*Reservation, error)
	CancelReservation(id string) (*Reservation, error)
	CleanupExpiredReservations() int

	ReservationByID(id string) (*Reservation, error)
	ReservationsByCustomer(customerID string) []*Reservation
	ReservationsInTimeRange(start, end time.Time) []*Reservation
	ReservationsForItem(itemID string) []*Reservation
	IsItemAvailableForTimeRange(itemID string, start, end time.Time) bool
}
