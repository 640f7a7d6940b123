package layout

import (
	"fmt"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

type GridOptions struct {
	Rows          int
	Columns       int
	RowSpacing    float64
	ColumnSpacing float64
	SeatWidth     float64
	SeatHeight    float64
	RowLabels     string

	// LabelFormatter overrides the default "<rowLetter><column>" labels.
	LabelFormatter func(row, col int) string

	// DisabledSeats lists (row, column) coordinates to mark as disabled.
	DisabledSeats [][2]int
}

// Grid builds a plain rows-by-columns seat map with no stage or zones, the
// simplest possible venue.
func Grid(opts GridOptions) *domain.VenueMap {
	if opts.Rows == 0 {
		opts.Rows = 10
	}
	if opts.Columns == 0 {
		opts.Columns = 10
	}
	if opts.RowSpacing == 0 {
		opts.RowSpacing = 50
	}
	if opts.ColumnSpacing == 0 {
		opts.ColumnSpacing = 40
	}
	if opts.SeatWidth == 0 {
		opts.SeatWidth = 30
	}
	if opts.SeatHeight == 0 {
		opts.SeatHeight = 30
	}
	if opts.RowLabels == "" {
		opts.RowLabels = defaultRowLabels
	}
	if opts.LabelFormatter == nil {
		opts.LabelFormatter = func(row, col int) string {
			return fmt.Sprintf("%s%d", rowLabel(opts.RowLabels, row), col+1)
		}
	}

	disabled := make(map[[2]int]bool, len(opts.DisabledSeats))
	for _, coord := range opts.DisabledSeats {
		disabled[coord] = true
	}

	m := domain.NewVenueMap(
		float64(opts.Columns)*opts.ColumnSpacing,
		float64(opts.Rows)*opts.RowSpacing,
	)
	m.Metadata = map[string]string{"layout": "grid"}

	for row := 0; row < opts.Rows; row++ {
		for col := 0; col < opts.Columns; col++ {
			status := domain.ItemAvailable
			if disabled[[2]int{row, col}] {
				status = domain.ItemDisabled
			}

			m.AddItem(&domain.Item{
				ID:     fmt.Sprintf("seat_%d_%d", row, col),
				Label:  opts.LabelFormatter(row, col),
				X:      float64(col)*opts.ColumnSpacing + opts.ColumnSpacing/2,
				Y:      float64(row)*opts.RowSpacing + opts.RowSpacing/2,
				Status: status,
				Type:   domain.ItemTypeSeat,
				Shape:  domain.ShapeRect,
				Width:  opts.SeatWidth,
				Height: opts.SeatHeight,
			})
		}
	}

	return m
}
