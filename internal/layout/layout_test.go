package layout

import (
	"testing"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCinema(t *testing.T) {
	m := Cinema(CinemaOptions{
		Rows:              5,
		SeatsPerRow:       []int{4, 4, 6, 6, 8},
		Curvature:         0.3,
		PremiumExtraPrice: decimal.NewFromInt(5),
	})

	seats := m.ItemsByType(domain.ItemTypeSeat)
	assert.Len(t, seats, 28)

	screen := m.ItemByID("screen")
	require.NotNil(t, screen)
	assert.Equal(t, domain.ItemDisabled, screen.Status)

	// First row is row A, labelled A1..A4 and priced as premium.
	a1 := m.ItemByID("seat_A1")
	require.NotNil(t, a1)
	assert.Equal(t, "A1", a1.Label)
	assert.Equal(t, "premium", a1.Metadata["category"])
	assert.True(t, a1.ExtraPrice.Equal(decimal.NewFromInt(5)))

	// Rows past the premium band carry no extra price.
	e1 := m.ItemByID("seat_E1")
	require.NotNil(t, e1)
	assert.True(t, e1.ExtraPrice.IsZero())

	assert.Len(t, m.Zones, 3)

	// Curvature pushes edge seats lower than the row center. Row A sits at
	// the pivot and stays flat, so check row B.
	rowB := m.ItemsByType(domain.ItemTypeSeat)[4:8]
	assert.Greater(t, rowB[0].Y, rowB[1].Y)
}

func TestCinemaDefaults(t *testing.T) {
	m := Cinema(CinemaOptions{})

	assert.NotEmpty(t, m.ItemsByType(domain.ItemTypeSeat))
	assert.NotNil(t, m.ItemByID("screen"))
	assert.Greater(t, m.Width, 0.0)
	assert.Greater(t, m.Height, 0.0)
}

func TestRestaurantCustomTables(t *testing.T) {
	m := Restaurant(RestaurantOptions{
		Width:  400,
		Height: 300,
		Tables: []TableSpec{
			{ID: "t1", Label: "Window 1", X: 60, Y: 60, Capacity: 4, Section: "window"},
			{X: 200, Y: 150, Capacity: 2, SkipChairs: true},
		},
	})

	t1 := m.ItemByID("t1")
	require.NotNil(t, t1)
	assert.Equal(t, domain.ItemTypeTable, t1.Type)
	assert.Equal(t, 4, t1.Capacity)
	assert.Equal(t, "window", t1.Metadata["section"])

	// Four chairs ring the first table; the second opted out.
	chairs := m.ItemsByType(domain.ItemTypeChair)
	assert.Len(t, chairs, 4)
	for _, chair := range chairs {
		assert.Equal(t, domain.ItemDisabled, chair.Status)
		assert.Equal(t, "t1", chair.Metadata["table"])
	}

	// Unnamed tables get positional ids.
	assert.NotNil(t, m.ItemByID("table_2"))

	assert.NotNil(t, m.ItemByID("entrance"))
	assert.Len(t, m.Zones, 3)
}

func TestRestaurantRandomPlacement(t *testing.T) {
	a := Restaurant(RestaurantOptions{NumTables: 12, Seed: 7})
	b := Restaurant(RestaurantOptions{NumTables: 12, Seed: 7})

	assert.Len(t, a.ItemsByType(domain.ItemTypeTable), 12)

	// Same seed, same floor plan.
	for i, table := range a.ItemsByType(domain.ItemTypeTable) {
		other := b.ItemsByType(domain.ItemTypeTable)[i]
		assert.Equal(t, table.X, other.X)
		assert.Equal(t, table.Y, other.Y)
		assert.Equal(t, table.Capacity, other.Capacity)
	}

	// Every table landed inside its section's bounds.
	for _, table := range a.ItemsByType(domain.ItemTypeTable) {
		sectionName := table.Metadata["section"]
		assert.Contains(t, []string{"window", "main", "bar"}, sectionName)
	}
}

func TestConferenceStyles(t *testing.T) {
	classroom := Conference(ConferenceOptions{Capacity: 24})
	assert.NotEmpty(t, classroom.ItemsByType(domain.ItemTypeTable))
	assert.NotNil(t, classroom.ItemByID("presenter_table"))

	theater := Conference(ConferenceOptions{Style: StyleTheater, Capacity: 40})
	chairs := theater.ItemsByType(domain.ItemTypeChair)
	assert.GreaterOrEqual(t, len(chairs), 40)
	assert.NotNil(t, theater.ItemByID("stage"))

	boardroom := Conference(ConferenceOptions{Style: StyleBoardroom, Capacity: 12})
	table := boardroom.ItemByID("boardroom_table")
	require.NotNil(t, table)
	assert.Equal(t, domain.ItemDisabled, table.Status)
	assert.Len(t, boardroom.ItemsByType(domain.ItemTypeChair), 12)
}

func TestGrid(t *testing.T) {
	m := Grid(GridOptions{
		Rows:          3,
		Columns:       4,
		DisabledSeats: [][2]int{{0, 0}, {2, 3}},
	})

	assert.Len(t, m.Items, 12)

	assert.Equal(t, domain.ItemDisabled, m.ItemByID("seat_0_0").Status)
	assert.Equal(t, domain.ItemDisabled, m.ItemByID("seat_2_3").Status)
	assert.Equal(t, domain.ItemAvailable, m.ItemByID("seat_1_1").Status)

	// Default labels are letter-number.
	assert.Equal(t, "A1", m.ItemByID("seat_0_0").Label)
	assert.Equal(t, "C4", m.ItemByID("seat_2_3").Label)
}
