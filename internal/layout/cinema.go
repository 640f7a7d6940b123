package layout

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
)

type CinemaOptions struct {
	Rows        int
	SeatsPerRow []int // per-row seat counts; derived from Rows when empty
	RowSpacing  float64
	SeatWidth   float64
	SeatHeight  float64
	RowLabels   string
	Curvature   float64 // 0 = straight rows, 1 = strongly curved

	// PremiumExtraPrice is applied to seats in the first three rows.
	PremiumExtraPrice decimal.Decimal
}

func (o *CinemaOptions) applyDefaults() {
	if o.Rows == 0 {
		o.Rows = 10
	}
	if o.RowSpacing == 0 {
		o.RowSpacing = 50
	}
	if o.SeatWidth == 0 {
		o.SeatWidth = 30
	}
	if o.SeatHeight == 0 {
		o.SeatHeight = 30
	}
	if o.RowLabels == "" {
		o.RowLabels = defaultRowLabels
	}

	if len(o.SeatsPerRow) == 0 {
		o.SeatsPerRow = make([]int, o.Rows)
		for i := range o.SeatsPerRow {
			o.SeatsPerRow[i] = 10 + i/2
		}
	}
}

// Cinema builds a screening-hall map: rows of seats curved toward the screen,
// a screen item along the top, and premium/standard/economy zones by row
// band. Rows are laid out from the bottom of the map upward.
func Cinema(opts CinemaOptions) *domain.VenueMap {
	opts.applyDefaults()

	maxSeats := 0
	for _, n := range opts.SeatsPerRow {
		if n > maxSeats {
			maxSeats = n
		}
	}

	mapWidth := float64(maxSeats) * opts.SeatWidth * 1.5
	mapHeight := float64(opts.Rows) * opts.RowSpacing * 1.2

	m := domain.NewVenueMap(mapWidth, mapHeight)
	m.Metadata = map[string]string{
		"layout": "cinema",
		"rows":   strconv.Itoa(opts.Rows),
	}

	for rowIndex := 0; rowIndex < opts.Rows && rowIndex < len(opts.SeatsPerRow); rowIndex++ {
		numSeats := opts.SeatsPerRow[rowIndex]
		label := rowLabel(opts.RowLabels, rowIndex)

		y := mapHeight - float64(rowIndex+1)*opts.RowSpacing
		rowWidth := float64(numSeats) * opts.SeatWidth * 1.2

		for seatIndex := 0; seatIndex < numSeats; seatIndex++ {
			relativePos := 0.0
			if numSeats > 1 {
				relativePos = float64(seatIndex)/float64(numSeats-1) - 0.5
			}

			x := mapWidth/2 + relativePos*rowWidth
			curveOffset := math.Abs(relativePos) * opts.Curvature * opts.RowSpacing * float64(rowIndex)

			category := "economy"
			extraPrice := decimal.Zero
			switch {
			case rowIndex < 3:
				category = "premium"
				extraPrice = opts.PremiumExtraPrice
			case rowIndex < 7:
				category = "standard"
			}

			m.AddItem(&domain.Item{
				ID:         fmt.Sprintf("seat_%s%d", label, seatIndex+1),
				Label:      fmt.Sprintf("%s%d", label, seatIndex+1),
				X:          x,
				Y:          y + curveOffset,
				Type:       domain.ItemTypeSeat,
				Shape:      domain.ShapeRect,
				Width:      opts.SeatWidth,
				Height:     opts.SeatHeight,
				ExtraPrice: extraPrice,
				Metadata: map[string]string{
					"row":      strconv.Itoa(rowIndex),
					"seat":     strconv.Itoa(seatIndex),
					"category": category,
				},
			})
		}
	}

	m.AddItem(&domain.Item{
		ID:     "screen",
		Label:  "SCREEN",
		X:      mapWidth / 2,
		Y:      mapHeight - float64(opts.Rows)*opts.RowSpacing - 50,
		Status: domain.ItemDisabled,
		Type:   domain.ItemTypeScreen,
		Shape:  domain.ShapeRect,
		Width:  mapWidth * 0.8,
		Height: 20,
	})

	bandY := func(rows int) float64 {
		return mapHeight - float64(rows)*opts.RowSpacing - 20
	}

	m.AddZone(domain.Zone{
		ID: "premium", Name: "Premium", Color: "#FF5722",
		Points: [][2]float64{
			{mapWidth * 0.1, bandY(3)}, {mapWidth * 0.9, bandY(3)},
			{mapWidth * 0.9, mapHeight}, {mapWidth * 0.1, mapHeight},
		},
	})
	m.AddZone(domain.Zone{
		ID: "standard", Name: "Standard", Color: "#2196F3",
		Points: [][2]float64{
			{mapWidth * 0.1, bandY(7)}, {mapWidth * 0.9, bandY(7)},
			{mapWidth * 0.9, bandY(3)}, {mapWidth * 0.1, bandY(3)},
		},
	})
	m.AddZone(domain.Zone{
		ID: "economy", Name: "Economy", Color: "#4CAF50",
		Points: [][2]float64{
			{mapWidth * 0.1, bandY(opts.Rows)}, {mapWidth * 0.9, bandY(opts.Rows)},
			{mapWidth * 0.9, bandY(7)}, {mapWidth * 0.1, bandY(7)},
		},
	})

	return m
}
