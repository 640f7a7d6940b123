package domain

import "errors"

var (
	ErrItemNotAvailable       = errors.New("one or more items do not exist or are not available")
	ErrCapacityExceeded       = errors.New("item count exceeds the maximum allowed per reservation")
	ErrInvalidCustomer        = errors.New("customer name and contact information are required")
	ErrInvalidTimeRange       = errors.New("reservation start time must be before its end time")
	ErrOverlapConflict        = errors.New("overlapping reservations are not allowed")
	ErrReservationNotFound    = errors.New("reservation not found")
	ErrInvalidStateTransition = errors.New("reservation status does not allow this transition")
	ErrReservationExpired     = errors.New("reservation has expired")
)
