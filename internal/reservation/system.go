// Package reservation holds the in-memory reservation engine: admission
// checks, lifecycle transitions, expiry, and the availability queries over
// the reservation log.
package reservation

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

// Settings are the recognized engine options. A zero MaxItemsPerReservation
// means unlimited. TimeSlotDuration and AllowMultipleItems are advisory for
// callers building booking UIs; the engine does not enforce them.
type Settings struct {
	ReservationExpiry      time.Duration
	MaxItemsPerReservation int
	AllowOverlapping       bool
	TimeSlotDuration       time.Duration
	AllowMultipleItems     bool
}

func DefaultSettings() Settings {
	return Settings{
		ReservationExpiry:      15 * time.Minute,
		MaxItemsPerReservation: 10,
		AllowOverlapping:       false,
		TimeSlotDuration:       time.Hour,
		AllowMultipleItems:     true,
	}
}

// System owns one venue map and the full reservation log. Every operation
// runs its admission checks and the resulting mutation as one unit under a
// single lock, so two concurrent CreateReservation calls can never both pass
// the overlap check against the same items.
//
// Events are emitted synchronously after the state change, outside the lock.
// Listeners therefore observe a consistent post-transition state, and they
// may call back into the system without deadlocking.
type System struct {
	mu           sync.Mutex
	venue        *domain.VenueMap
	reservations []*domain.Reservation
	byID         map[string]*domain.Reservation
	settings     Settings
	events       *dispatcher
	logger       *slog.Logger
	now          func() time.Time
}

func NewSystem(venue *domain.VenueMap, settings Settings, logger *slog.Logger) *System {
	if venue == nil {
		venue = domain.NewVenueMap(0, 0)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &System{
		venue:    venue,
		byID:     make(map[string]*domain.Reservation),
		settings: settings,
		events:   newDispatcher(logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Venue returns the venue map this system drives. The map is shared, not
// copied; item statuses on it are mutated by the lifecycle operations.
func (s *System) Venue() *domain.VenueMap {
	return s.venue
}

func (s *System) Settings() Settings {
	return s.settings
}

// On registers a listener for the given event kind and returns a token for
// Off. Delivery is synchronous and in registration order.
func (s *System) On(kind EventKind, l Listener) int {
	return s.events.on(kind, l)
}

func (s *System) Off(kind EventKind, token int) {
	s.events.off(kind, token)
}

// CreateReservation admits a new pending reservation for the given items and
// half-open interval [start, end). All checks run before any mutation: on
// failure no item status changes and nothing is appended to the log.
//
// Admission is strict: only items currently in available status qualify.
// Items sitting in reserved status are not re-selectable even though the
// temporal overlap check alone might admit them.
func (s *System) CreateReservation(
	itemIDs []string,
	customer domain.Customer,
	start, end time.Time,
	metadata map[string]string,
) (*domain.Reservation, error) {
	s.mu.Lock()
	res, err := s.createLocked(itemIDs, customer, start, end, metadata)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation created",
		"reservation_id", res.ID,
		"items", len(res.ItemIDs),
		"customer", res.Customer.Email,
	)
	s.events.emit(Event{Kind: EventReservationCreated, Reservation: res, At: res.CreatedAt})

	return res, nil
}

func (s *System) createLocked(
	itemIDs []string,
	customer domain.Customer,
	start, end time.Time,
	metadata map[string]string,
) (*domain.Reservation, error) {
	if !customer.HasContact() {
		return nil, domain.ErrInvalidCustomer
	}

	var unavailable []string

	for _, id := range itemIDs {
		item := s.venue.ItemByID(id)
		if item == nil || !item.IsAvailable() {
			unavailable = append(unavailable, id)
		}
	}

	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("%w: no items requested", domain.ErrItemNotAvailable)
	}
	if len(unavailable) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotAvailable, strings.Join(unavailable, ", "))
	}

	if s.settings.MaxItemsPerReservation > 0 && len(itemIDs) > s.settings.MaxItemsPerReservation {
		return nil, fmt.Errorf("%w: maximum %d items", domain.ErrCapacityExceeded, s.settings.MaxItemsPerReservation)
	}

	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return nil, domain.ErrInvalidTimeRange
	}

	if !s.settings.AllowOverlapping {
		if conflict := s.findOverlapLocked(itemIDs, start, end); conflict != nil {
			return nil, fmt.Errorf("%w: conflicts with reservation %s", domain.ErrOverlapConflict, conflict.ID)
		}
	}

	now := s.now()

	res := &domain.Reservation{
		ID:        uuid.New().String(),
		ItemIDs:   append([]string(nil), itemIDs...),
		Customer:  customer,
		StartTime: start,
		EndTime:   end,
		Status:    domain.ReservationPending,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(s.settings.ReservationExpiry),
		Metadata:  metadata,
	}

	for _, id := range itemIDs {
		if item := s.venue.ItemByID(id); item != nil {
			item.Status = domain.ItemReserved
		}
	}

	s.reservations = append(s.reservations, res)
	s.byID[res.ID] = res

	return res, nil
}

// ConfirmReservation moves a pending reservation to confirmed and marks its
// items occupied. Confirming anything other than a live pending reservation
// is an error: re-confirming is rejected, and an expired hold cannot be
// rescued.
func (s *System) ConfirmReservation(id string) (*domain.Reservation, error) {
	s.mu.Lock()
	res, err := s.confirmLocked(id)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation confirmed", "reservation_id", res.ID)
	s.events.emit(Event{Kind: EventReservationConfirmed, Reservation: res, At: res.UpdatedAt})

	return res, nil
}

func (s *System) confirmLocked(id string) (*domain.Reservation, error) {
	res, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, id)
	}

	if res.Status != domain.ReservationPending {
		return nil, fmt.Errorf("%w: cannot confirm %s reservation", domain.ErrInvalidStateTransition, res.Status)
	}

	if res.IsExpired(s.now()) {
		return nil, fmt.Errorf("%w: %s", domain.ErrReservationExpired, id)
	}

	res.Status = domain.ReservationConfirmed
	res.UpdatedAt = s.now()

	for _, itemID := range res.ItemIDs {
		if item := s.venue.ItemByID(itemID); item != nil {
			item.Status = domain.ItemOccupied
		}
	}

	return res, nil
}

// CancelReservation cancels a pending or confirmed reservation and returns
// its items to available. Cancelling an already-cancelled reservation is an
// idempotent no-op: the unchanged record is returned and no event fires.
func (s *System) CancelReservation(id string) (*domain.Reservation, error) {
	s.mu.Lock()
	res, changed, err := s.cancelLocked(id)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("reservation cancelled", "reservation_id", res.ID)
		s.events.emit(Event{Kind: EventReservationCancelled, Reservation: res, At: res.UpdatedAt})
	}

	return res, nil
}

func (s *System) cancelLocked(id string) (*domain.Reservation, bool, error) {
	res, ok := s.byID[id]
	if !ok {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, id)
	}

	if res.Status == domain.ReservationCancelled {
		return res, false, nil
	}

	res.Status = domain.ReservationCancelled
	res.UpdatedAt = s.now()

	for _, itemID := range res.ItemIDs {
		if item := s.venue.ItemByID(itemID); item != nil {
			item.Status = domain.ItemAvailable
		}
	}

	return res, true, nil
}

// CleanupExpiredReservations cancels every pending reservation whose hold has
// lapsed and returns how many were processed. The engine owns no timer; an
// external scheduler is expected to call this periodically.
func (s *System) CleanupExpiredReservations() int {
	now := s.now()

	s.mu.Lock()

	var expired []*domain.Reservation

	for _, res := range s.reservations {
		if res.Status == domain.ReservationPending && res.IsExpired(now) {
			if _, changed, err := s.cancelLocked(res.ID); err == nil && changed {
				expired = append(expired, res)
			}
		}
	}

	s.mu.Unlock()

	for _, res := range expired {
		s.logger.Info("expired reservation cleaned up", "reservation_id", res.ID)
		s.events.emit(Event{Kind: EventReservationCancelled, Reservation: res, At: res.UpdatedAt})
	}

	return len(expired)
}

// ReservationByID returns the live reservation record for the given id.
func (s *System) ReservationByID(id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrReservationNotFound, id)
	}

	return res, nil
}

// ReservationsByCustomer returns every reservation, including cancelled ones,
// held by the customer with the given id.
func (s *System) ReservationsByCustomer(customerID string) []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Reservation

	for _, res := range s.reservations {
		if res.Customer.ID == customerID {
			out = append(out, res)
		}
	}

	return out
}

// ReservationsInTimeRange returns the non-cancelled reservations whose
// interval overlaps [start, end).
func (s *System) ReservationsInTimeRange(start, end time.Time) []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Reservation

	for _, res := range s.reservations {
		if res.Status != domain.ReservationCancelled && res.Overlaps(start, end) {
			out = append(out, res)
		}
	}

	return out
}

// ReservationsForItem returns the non-cancelled reservations that include the
// given item.
func (s *System) ReservationsForItem(itemID string) []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*domain.Reservation

	for _, res := range s.reservations {
		if res.Status != domain.ReservationCancelled && res.HasItem(itemID) {
			out = append(out, res)
		}
	}

	return out
}

// Reservations returns a snapshot of the full reservation log, oldest first.
func (s *System) Reservations() []*domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.Reservation, len(s.reservations))
	copy(out, s.reservations)

	return out
}

// IsItemAvailableForTimeRange is a purely temporal check against the
// reservation log: the item's instantaneous reserved/occupied status does not
// matter, only whether some non-cancelled reservation overlaps the range.
// Unknown, disabled, and maintenance items are never available.
func (s *System) IsItemAvailableForTimeRange(itemID string, start, end time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.venue.ItemByID(itemID)
	if item == nil || item.Status == domain.ItemDisabled || item.Status == domain.ItemMaintenance {
		return false
	}

	for _, res := range s.reservations {
		if res.Status != domain.ReservationCancelled && res.HasItem(itemID) && res.Overlaps(start, end) {
			return false
		}
	}

	return true
}

func (s *System) findOverlapLocked(itemIDs []string, start, end time.Time) *domain.Reservation {
	requested := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		requested[id] = struct{}{}
	}

	for _, res := range s.reservations {
		if res.Status == domain.ReservationCancelled || !res.Overlaps(start, end) {
			continue
		}

		for _, id := range res.ItemIDs {
			if _, ok := requested[id]; ok {
				return res
			}
		}
	}

	return nil
}
