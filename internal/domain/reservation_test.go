package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to ReservationStatus
		want     bool
	}{
		{ReservationPending, ReservationConfirmed, true},
		{ReservationPending, ReservationCancelled, true},
		{ReservationConfirmed, ReservationCancelled, true},
		{ReservationConfirmed, ReservationPending, false},
		{ReservationCancelled, ReservationPending, false},
		{ReservationCancelled, ReservationConfirmed, false},
		{ReservationPending, ReservationPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	res := Reservation{ExpiresAt: now.Add(10 * time.Minute)}
	assert.False(t, res.IsExpired(now))
	assert.False(t, res.IsExpired(now.Add(10*time.Minute)))
	assert.True(t, res.IsExpired(now.Add(10*time.Minute+time.Second)))

	// No deadline means the reservation never expires.
	forever := Reservation{}
	assert.False(t, forever.IsExpired(now.Add(1000*time.Hour)))
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	res := Reservation{StartTime: base, EndTime: base.Add(2 * time.Hour)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", base, base.Add(2 * time.Hour), true},
		{"contained", base.Add(30 * time.Minute), base.Add(time.Hour), true},
		{"containing", base.Add(-time.Hour), base.Add(3 * time.Hour), true},
		{"overlapping start", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"overlapping end", base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"adjacent before", base.Add(-time.Hour), base, false},
		{"adjacent after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
		{"disjoint", base.Add(5 * time.Hour), base.Add(6 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, res.Overlaps(tt.start, tt.end))
		})
	}
}

func TestCustomerHasContact(t *testing.T) {
	assert.True(t, Customer{Name: "Ada", Email: "ada@example.com"}.HasContact())
	assert.False(t, Customer{Name: "Ada"}.HasContact())
	assert.False(t, Customer{Email: "ada@example.com"}.HasContact())
	assert.False(t, Customer{}.HasContact())
}

func TestHasItem(t *testing.T) {
	res := Reservation{ItemIDs: []string{"A", "B"}}

	assert.True(t, res.HasItem("A"))
	assert.True(t, res.HasItem("B"))
	assert.False(t, res.HasItem("C"))
}
