package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

type MockReservationService struct {
	mock.Mock
	domain.ReservationService
}

func (m *MockReservationService) CreateReservation(
	itemIDs []string,
	customer domain.Customer,
	start, end time.Time,
	metadata map[string]string) (*domain.Reservation, error) {

	args := m.Called(itemIDs, customer, start, end, metadata)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ConfirmReservation(id string) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) CancelReservation(id string) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) CleanupExpiredReservations() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockReservationService) ReservationByID(id string) (*domain.Reservation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationService) ReservationsByCustomer(customerID string) []*domain.Reservation {
	args := m.Called(customerID)
	return args.Get(0).([]*domain.Reservation)
}

func (m *MockReservationService) ReservationsInTimeRange(start, end time.Time) []*domain.Reservation {
	args := m.Called(start, end)
	return args.Get(0).([]*domain.Reservation)
}

func (m *MockReservationService) ReservationsForItem(itemID string) []*domain.Reservation {
	args := m.Called(itemID)
	return args.Get(0).([]*domain.Reservation)
}

func (m *MockReservationService) IsItemAvailableForTimeRange(itemID string, start, end time.Time) bool {
	args := m.Called(itemID, start, end)
	return args.Bool(0)
}
