package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

// TableSpec pins down one table when the caller wants full control over the
// floor plan instead of random placement.
type TableSpec struct {
	ID       string
	Label    string
	X, Y     float64
	Rotation float64
	Shape    domain.Shape
	Capacity int
	Width    float64
	Height   float64
	Section  string

	// SkipChairs suppresses the decorative chair ring around the table.
	SkipChairs bool
}

type RestaurantOptions struct {
	Width     float64
	Height    float64
	NumTables int
	Tables    []TableSpec // when non-empty, NumTables and Seed are ignored

	// Seed drives random table placement. Zero means an arbitrary layout on
	// every call.
	Seed int64
}

type section struct {
	name       string
	weight     float64
	minX, maxX float64
	minY, maxY float64
}

// Restaurant builds a dining-floor map: tables (with decorative chair rings)
// spread across window, main, and bar sections, an entrance, and one zone per
// section. Chairs and the entrance are disabled items; only tables are
// reservable.
func Restaurant(opts RestaurantOptions) *domain.VenueMap {
	if opts.Width == 0 {
		opts.Width = 800
	}
	if opts.Height == 0 {
		opts.Height = 600
	}
	if opts.NumTables == 0 {
		opts.NumTables = 20
	}

	m := domain.NewVenueMap(opts.Width, opts.Height)
	m.Metadata = map[string]string{"layout": "restaurant"}

	if len(opts.Tables) > 0 {
		for i, spec := range opts.Tables {
			addCustomTable(m, i, spec)
		}
	} else {
		addRandomTables(m, opts)
	}

	m.AddItem(&domain.Item{
		ID:     "entrance",
		Label:  "Entrance",
		X:      opts.Width / 2,
		Y:      opts.Height,
		Status: domain.ItemDisabled,
		Type:   domain.ItemTypeEntrance,
		Shape:  domain.ShapeRect,
		Width:  60,
		Height: 20,
	})

	for _, s := range restaurantSections(opts.Width, opts.Height) {
		m.AddZone(domain.Zone{
			ID:    s.name,
			Name:  sectionDisplayName(s.name),
			Color: sectionColor(s.name),
			Points: [][2]float64{
				{s.minX, s.minY}, {s.maxX, s.minY},
				{s.maxX, s.maxY}, {s.minX, s.maxY},
			},
		})
	}

	return m
}

func addCustomTable(m *domain.VenueMap, index int, spec TableSpec) {
	id := spec.ID
	if id == "" {
		id = fmt.Sprintf("table_%d", index+1)
	}

	label := spec.Label
	if label == "" {
		label = fmt.Sprintf("%d", index+1)
	}

	shape := spec.Shape
	if shape == "" {
		shape = domain.ShapeCircle
	}

	capacity := spec.Capacity
	if capacity == 0 {
		capacity = 4
	}

	width, height := spec.Width, spec.Height
	if width == 0 {
		width = 60
	}
	if height == 0 {
		height = 60
	}

	sectionName := spec.Section
	if sectionName == "" {
		sectionName = "main"
	}

	m.AddItem(&domain.Item{
		ID:       id,
		Label:    label,
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
		Type:     domain.ItemTypeTable,
		Shape:    shape,
		Capacity: capacity,
		Width:    width,
		Height:   height,
		Metadata: map[string]string{"section": sectionName},
	})

	if spec.SkipChairs {
		return
	}

	// Ring of chairs around the table. Chairs are scenery, not reservable.
	chairDistance := math.Max(width, height) * 0.75

	for i := 0; i < capacity; i++ {
		angle := float64(i)*2*math.Pi/float64(capacity) + spec.Rotation*math.Pi/180

		m.AddItem(&domain.Item{
			ID:       fmt.Sprintf("chair_%s_%d", id, i+1),
			X:        spec.X + chairDistance*math.Cos(angle),
			Y:        spec.Y + chairDistance*math.Sin(angle),
			Rotation: angle*180/math.Pi + 90,
			Status:   domain.ItemDisabled,
			Type:     domain.ItemTypeChair,
			Shape:    domain.ShapeRect,
			Width:    20,
			Height:   20,
			Metadata: map[string]string{"table": id},
		})
	}
}

func addRandomTables(m *domain.VenueMap, opts RestaurantOptions) {
	rng := rand.New(rand.NewSource(opts.Seed))
	sections := restaurantSections(opts.Width, opts.Height)
	capacities := []int{2, 4, 6, 8}

	for i := 0; i < opts.NumTables; i++ {
		s := sections[len(sections)-1]
		roll := rng.Float64()
		cumulative := 0.0

		for _, candidate := range sections {
			cumulative += candidate.weight
			if roll <= cumulative {
				s = candidate
				break
			}
		}

		shape := domain.ShapeCircle
		if rng.Intn(2) == 1 {
			shape = domain.ShapeRect
		}

		capacity := capacities[rng.Intn(len(capacities))]
		size := 30 + float64(capacity)*5

		height := size
		if shape == domain.ShapeRect {
			height = size * 0.6
		}

		m.AddItem(&domain.Item{
			ID:       fmt.Sprintf("table_%d", i+1),
			Label:    fmt.Sprintf("%d", i+1),
			X:        s.minX + rng.Float64()*(s.maxX-s.minX),
			Y:        s.minY + rng.Float64()*(s.maxY-s.minY),
			Rotation: float64(rng.Intn(360)),
			Type:     domain.ItemTypeTable,
			Shape:    shape,
			Capacity: capacity,
			Width:    size,
			Height:   height,
			Metadata: map[string]string{"section": s.name},
		})
	}
}

func restaurantSections(width, height float64) []section {
	return []section{
		{name: "window", weight: 0.3, minX: width * 0.05, maxX: width * 0.25, minY: height * 0.05, maxY: height * 0.95},
		{name: "main", weight: 0.5, minX: width * 0.3, maxX: width * 0.7, minY: height * 0.05, maxY: height * 0.95},
		{name: "bar", weight: 0.2, minX: width * 0.75, maxX: width * 0.95, minY: height * 0.05, maxY: height * 0.95},
	}
}

func sectionDisplayName(name string) string {
	switch name {
	case "window":
		return "Window Section"
	case "main":
		return "Main Dining"
	case "bar":
		return "Bar Area"
	}

	return name
}

func sectionColor(name string) string {
	switch name {
	case "window":
		return "#8BC34A"
	case "main":
		return "#03A9F4"
	case "bar":
		return "#FF9800"
	}

	return "#9E9E9E"
}
