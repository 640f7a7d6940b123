package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

func buildRenderMap(t *testing.T) *domain.VenueMap {
	t.Helper()

	m := domain.NewVenueMap(400, 300)

	m.AddItem(&domain.Item{ID: "seat_A1", Label: "A1", X: 50, Y: 50, Type: domain.ItemTypeSeat})
	m.AddItem(&domain.Item{
		ID:     "table_1",
		Label:  "T1",
		X:      200,
		Y:      150,
		Type:   domain.ItemTypeTable,
		Shape:  domain.ShapeCircle,
		Status: domain.ItemReserved,
	})
	m.AddItem(&domain.Item{
		ID:     "booth_1",
		Label:  "B1",
		X:      320,
		Y:      220,
		Shape:  domain.ShapePolygon,
		Points: [][2]float64{{-20, -20}, {20, -20}, {0, 20}},
	})

	m.AddZone(domain.Zone{
		ID:     "vip",
		Name:   "VIP",
		Color:  "#FFD700",
		Points: [][2]float64{{0, 0}, {100, 0}, {100, 100}, {0, 100}},
	})

	return m
}

func TestSVG(t *testing.T) {
	m := buildRenderMap(t)

	svg := SVG(m, DefaultSVGOptions())

	assert.True(t, strings.HasPrefix(svg, `<svg width="400" height="300"`))
	assert.True(t, strings.HasSuffix(svg, `</svg>`))

	assert.Contains(t, svg, `data-item-id="seat_A1"`)
	assert.Contains(t, svg, StatusColors[domain.ItemAvailable])
	assert.Contains(t, svg, StatusColors[domain.ItemReserved])

	// Labels and zones on by default, legend off.
	assert.Contains(t, svg, ">A1</text>")
	assert.Contains(t, svg, `data-zone-id="vip"`)
	assert.Contains(t, svg, ">VIP</text>")
	assert.NotContains(t, svg, `class="legend"`)

	// Polygon points are translated to the item position.
	assert.Contains(t, svg, `points="300,200 340,200 320,240"`)
}

func TestSVGOptions(t *testing.T) {
	m := buildRenderMap(t)

	svg := SVG(m, SVGOptions{ShowLegend: true})

	assert.Contains(t, svg, `class="legend"`)
	assert.NotContains(t, svg, `class="zones"`)
	assert.NotContains(t, svg, ">A1</text>")
}

func TestSVGRotation(t *testing.T) {
	m := domain.NewVenueMap(200, 200)
	m.AddItem(&domain.Item{ID: "s1", X: 100, Y: 100, Rotation: 45})

	svg := SVG(m, SVGOptions{})

	assert.Contains(t, svg, `transform="rotate(45 100 100)"`)
}

func TestText(t *testing.T) {
	m := buildRenderMap(t)

	out := Text(m, 40)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.Equal(t, "+"+strings.Repeat("-", 40)+"+", lines[0])
	assert.Contains(t, out, "o")
	assert.Contains(t, out, "?")
	assert.Contains(t, out, "o available")
}

func TestTicketPNG(t *testing.T) {
	gen := NewTicketGenerator("ticket-secret")

	png, err := gen.TicketPNG(&domain.Reservation{
		ID:      "res-1",
		ItemIDs: []string{"seat_A1"},
		Status:  domain.ReservationConfirmed,
	})
	require.NoError(t, err)

	// PNG magic bytes.
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestTicketPayloadRoundTrip(t *testing.T) {
	gen := NewTicketGenerator("ticket-secret")

	original := &domain.Reservation{
		ID:        "res-1",
		ItemIDs:   []string{"seat_A1", "seat_A2"},
		Customer:  domain.Customer{Name: "Ada Lovelace", Email: "ada@example.com"},
		StartTime: time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC),
		Status:    domain.ReservationConfirmed,
	}

	payload, err := encryptAES(mustJSON(t, original), gen.secret)
	require.NoError(t, err)

	decoded, err := gen.DecodePayload(payload)
	require.NoError(t, err)

	assert.Equal(t, original.ID, decoded.ID)
	assert.Equal(t, original.ItemIDs, decoded.ItemIDs)
	assert.Equal(t, original.Customer.Email, decoded.Customer.Email)
	assert.True(t, original.StartTime.Equal(decoded.StartTime))
}

func TestTicketWrongSecret(t *testing.T) {
	payload, err := encryptAES([]byte(`{"id":"res-1"}`), NewTicketGenerator("right").secret)
	require.NoError(t, err)

	_, err = NewTicketGenerator("wrong").DecodePayload(payload)
	assert.Error(t, err)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return data
}
