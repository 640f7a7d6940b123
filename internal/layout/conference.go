package layout

import (
	"fmt"
	"math"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

type ConferenceStyle string

const (
	StyleClassroom ConferenceStyle = "classroom"
	StyleTheater   ConferenceStyle = "theater"
	StyleBoardroom ConferenceStyle = "boardroom"
)

type ConferenceOptions struct {
	Width    float64
	Height   float64
	Style    ConferenceStyle
	Capacity int
}

// Conference builds a meeting-room map in one of three styles: classroom
// (two-person tables in rows), theater (rows of chairs facing a stage), or
// boardroom (one central table ringed by chairs). Presenter furniture is
// disabled scenery.
func Conference(opts ConferenceOptions) *domain.VenueMap {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.Style == "" {
		opts.Style = StyleClassroom
	}
	if opts.Capacity == 0 {
		opts.Capacity = 30
	}

	m := domain.NewVenueMap(opts.Width, opts.Height)
	m.Metadata = map[string]string{"layout": "conference", "style": string(opts.Style)}

	switch opts.Style {
	case StyleTheater:
		addTheaterRows(m, opts)
	case StyleBoardroom:
		addBoardroom(m, opts)
	default:
		addClassroomRows(m, opts)
	}

	return m
}

func addClassroomRows(m *domain.VenueMap, opts ConferenceOptions) {
	const (
		rowSpacing  = 80.0
		tableWidth  = 120.0
		tableHeight = 40.0
	)

	tablesPerRow := int(opts.Width * 0.8 / (tableWidth + 20))
	if tablesPerRow < 1 {
		tablesPerRow = 1
	}

	// Two people per table.
	numRows := int(math.Ceil(float64(opts.Capacity) / float64(tablesPerRow*2)))

	for row := 0; row < numRows; row++ {
		y := opts.Height*0.3 + float64(row)*rowSpacing

		for col := 0; col < tablesPerRow; col++ {
			x := opts.Width*0.1 + float64(col)*(tableWidth+20) + tableWidth/2

			m.AddItem(&domain.Item{
				ID:       fmt.Sprintf("table_%d_%d", row+1, col+1),
				Label:    fmt.Sprintf("%d-%d", row+1, col+1),
				X:        x,
				Y:        y,
				Type:     domain.ItemTypeTable,
				Shape:    domain.ShapeRect,
				Capacity: 2,
				Width:    tableWidth,
				Height:   tableHeight,
				Metadata: map[string]string{"section": "classroom"},
			})
		}
	}

	m.AddItem(&domain.Item{
		ID:     "presenter_table",
		Label:  "Presenter",
		X:      opts.Width / 2,
		Y:      opts.Height * 0.15,
		Status: domain.ItemDisabled,
		Type:   domain.ItemTypePodium,
		Shape:  domain.ShapeRect,
		Width:  opts.Width * 0.3,
		Height: 40,
	})
}

func addTheaterRows(m *domain.VenueMap, opts ConferenceOptions) {
	const (
		rowSpacing = 50.0
		chairWidth = 30.0
	)

	chairsPerRow := int(opts.Width * 0.8 / (chairWidth + 10))
	if chairsPerRow < 1 {
		chairsPerRow = 1
	}

	numRows := int(math.Ceil(float64(opts.Capacity) / float64(chairsPerRow)))

	for row := 0; row < numRows; row++ {
		y := opts.Height*0.3 + float64(row)*rowSpacing

		for col := 0; col < chairsPerRow; col++ {
			m.AddItem(&domain.Item{
				ID:       fmt.Sprintf("chair_%d_%d", row+1, col+1),
				Label:    fmt.Sprintf("%d-%d", row+1, col+1),
				X:        opts.Width*0.1 + float64(col)*(chairWidth+10) + chairWidth/2,
				Y:        y,
				Type:     domain.ItemTypeChair,
				Shape:    domain.ShapeRect,
				Width:    chairWidth,
				Height:   chairWidth,
				Metadata: map[string]string{"section": "theater"},
			})
		}
	}

	m.AddItem(&domain.Item{
		ID:     "stage",
		Label:  "Stage",
		X:      opts.Width / 2,
		Y:      opts.Height * 0.15,
		Status: domain.ItemDisabled,
		Type:   domain.ItemTypeStage,
		Shape:  domain.ShapeRect,
		Width:  opts.Width * 0.5,
		Height: 40,
	})
}

func addBoardroom(m *domain.VenueMap, opts ConferenceOptions) {
	tableWidth := math.Min(opts.Width*0.7, float64(opts.Capacity)*30)
	tableHeight := math.Min(opts.Height*0.5, float64(opts.Capacity)*20)

	m.AddItem(&domain.Item{
		ID:     "boardroom_table",
		Label:  "Table",
		X:      opts.Width / 2,
		Y:      opts.Height / 2,
		Status: domain.ItemDisabled,
		Type:   domain.ItemTypeTable,
		Shape:  domain.ShapeRect,
		Width:  tableWidth,
		Height: tableHeight,
	})

	chairsPerSide := opts.Capacity / 4
	if chairsPerSide < 1 {
		chairsPerSide = 1
	}

	spacingX := tableWidth / float64(chairsPerSide+1)
	spacingY := tableHeight / float64(chairsPerSide+1)

	addChair := func(id string, x, y, rotation float64) {
		m.AddItem(&domain.Item{
			ID:       id,
			Label:    "",
			X:        x,
			Y:        y,
			Rotation: rotation,
			Type:     domain.ItemTypeChair,
			Shape:    domain.ShapeRect,
			Width:    30,
			Height:   30,
			Metadata: map[string]string{"section": "boardroom"},
		})
	}

	for i := 1; i <= chairsPerSide; i++ {
		x := opts.Width/2 - tableWidth/2 + float64(i)*spacingX
		addChair(fmt.Sprintf("chair_top_%d", i), x, opts.Height/2-tableHeight/2-20, 180)
		addChair(fmt.Sprintf("chair_bottom_%d", i), x, opts.Height/2+tableHeight/2+20, 0)
	}

	for i := 1; i <= chairsPerSide; i++ {
		y := opts.Height/2 - tableHeight/2 + float64(i)*spacingY
		addChair(fmt.Sprintf("chair_left_%d", i), opts.Width/2-tableWidth/2-20, y, 90)
		addChair(fmt.Sprintf("chair_right_%d", i), opts.Width/2+tableWidth/2+20, y, 270)
	}
}
