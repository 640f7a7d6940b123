package render

import (
	"fmt"
	"strings"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

var statusRunes = map[domain.ItemStatus]rune{
	domain.ItemAvailable:   'o',
	domain.ItemReserved:    '?',
	domain.ItemOccupied:    'x',
	domain.ItemDisabled:    '.',
	domain.ItemMaintenance: '!',
}

// Text renders the venue map as a character grid for terminal output, one
// rune per item cell plus a legend. cols controls the horizontal resolution;
// rows are derived from the map's aspect ratio.
func Text(m *domain.VenueMap, cols int) string {
	if cols <= 0 {
		cols = 80
	}

	rows := int(float64(cols) * m.Height / m.Width / 2)
	if rows < 1 {
		rows = 1
	}

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	for _, item := range m.Items {
		col := int(item.X / m.Width * float64(cols))
		row := int(item.Y / m.Height * float64(rows))

		if col < 0 || col >= cols || row < 0 || row >= rows {
			continue
		}

		r, ok := statusRunes[item.Status]
		if !ok {
			r = '?'
		}
		grid[row][col] = r
	}

	var b strings.Builder

	border := "+" + strings.Repeat("-", cols) + "+\n"

	b.WriteString(border)
	for _, row := range grid {
		b.WriteByte('|')
		b.WriteString(string(row))
		b.WriteString("|\n")
	}
	b.WriteString(border)

	fmt.Fprintf(&b, "o available  ? reserved  x occupied  . disabled  ! maintenance\n")

	return b.String()
}
