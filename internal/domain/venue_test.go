package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestMap() *VenueMap {
	m := NewVenueMap(200, 200)

	m.AddItem(&Item{ID: "a1", Label: "A1", X: 50, Y: 50})
	m.AddItem(&Item{ID: "a2", Label: "A2", X: 100, Y: 50, Status: ItemReserved})
	m.AddItem(&Item{ID: "t1", Label: "T1", X: 150, Y: 150, Type: ItemTypeTable, Shape: ShapeCircle, Capacity: 4})

	m.AddZone(Zone{
		ID:     "front",
		Name:   "Front",
		Color:  "#FF5722",
		Points: [][2]float64{{0, 0}, {200, 0}, {200, 80}, {0, 80}},
	})

	return m
}

func TestVenueMapLookups(t *testing.T) {
	m := buildTestMap()

	require.NotNil(t, m.ItemByID("a1"))
	assert.Nil(t, m.ItemByID("missing"))

	assert.Len(t, m.ItemsByStatus(ItemAvailable), 2)
	assert.Len(t, m.ItemsByStatus(ItemReserved), 1)
	assert.Len(t, m.ItemsByType(ItemTypeSeat), 2)
	assert.Len(t, m.ItemsByType(ItemTypeTable), 1)

	m.RemoveItem("a2")
	assert.Nil(t, m.ItemByID("a2"))
	assert.Len(t, m.Items, 2)
}

func TestItemAtPosition(t *testing.T) {
	m := buildTestMap()

	hit := m.ItemAtPosition(52, 48)
	require.NotNil(t, hit)
	assert.Equal(t, "a1", hit.ID)

	assert.Nil(t, m.ItemAtPosition(5, 190))

	// Overlapping items resolve to the one added last (topmost in z-order).
	m.AddItem(&Item{ID: "overlay", X: 50, Y: 50, Width: 30, Height: 30})
	hit = m.ItemAtPosition(50, 50)
	require.NotNil(t, hit)
	assert.Equal(t, "overlay", hit.ID)
}

func TestItemsInZone(t *testing.T) {
	m := buildTestMap()

	front := m.ItemsInZone("front")
	require.Len(t, front, 2)
	assert.Equal(t, "a1", front[0].ID)
	assert.Equal(t, "a2", front[1].ID)

	assert.Nil(t, m.ItemsInZone("missing"))

	// Degenerate zones enclose nothing.
	m.AddZone(Zone{ID: "line", Points: [][2]float64{{0, 0}, {10, 10}}})
	assert.Nil(t, m.ItemsInZone("line"))

	m.RemoveZone("front")
	assert.Nil(t, m.ItemsInZone("front"))
}

func TestVenueMapJSONRoundTrip(t *testing.T) {
	m := buildTestMap()
	m.Metadata = map[string]string{"venue": "test hall"}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	parsed, err := ParseVenueMap(data)
	require.NoError(t, err)

	if diff := cmp.Diff(m, parsed); diff != "" {
		t.Errorf("venue map changed across JSON round trip (-want +got):\n%s", diff)
	}
}

func TestParseVenueMapDefaults(t *testing.T) {
	parsed, err := ParseVenueMap([]byte(`{"items":[{"id":"x"}]}`))
	require.NoError(t, err)

	assert.Equal(t, 800.0, parsed.Width)
	assert.Equal(t, 600.0, parsed.Height)

	item := parsed.ItemByID("x")
	require.NotNil(t, item)
	assert.Equal(t, ItemAvailable, item.Status)
	assert.Equal(t, 1, item.Capacity)

	_, err = ParseVenueMap([]byte(`{"items":`))
	assert.Error(t, err)
}
