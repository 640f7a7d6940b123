// Package render turns venue maps and reservations into presentable output:
// SVG floor plans, terminal sketches, and QR ticket images.
package render

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/rexstudios-dev/venue-reservation-system/internal/domain"
)

// StatusColors is the default status palette: green available, amber
// reserved, red occupied, grey disabled, blue maintenance.
var StatusColors = map[domain.ItemStatus]string{
	domain.ItemAvailable:   "#4CAF50",
	domain.ItemReserved:    "#FFC107",
	domain.ItemOccupied:    "#F44336",
	domain.ItemDisabled:    "#9E9E9E",
	domain.ItemMaintenance: "#2196F3",
}

type SVGOptions struct {
	ShowLabels  bool
	ShowZones   bool
	ShowLegend  bool
	ZoneOpacity float64
	Colors      map[domain.ItemStatus]string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		ShowLabels:  true,
		ShowZones:   true,
		ShowLegend:  false,
		ZoneOpacity: 0.2,
		Colors:      StatusColors,
	}
}

// SVG renders the venue map as standalone SVG markup: zones first (under the
// items), then items in insertion order so later items draw on top, matching
// the hit-test z-order.
func SVG(m *domain.VenueMap, opts SVGOptions) string {
	if opts.Colors == nil {
		opts.Colors = StatusColors
	}
	if opts.ZoneOpacity == 0 {
		opts.ZoneOpacity = 0.2
	}

	var b strings.Builder

	fmt.Fprintf(&b, `<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`, m.Width, m.Height)

	if m.BackgroundImage != "" {
		fmt.Fprintf(&b, `<image href="%s" width="%g" height="%g" preserveAspectRatio="xMidYMid meet"/>`,
			html.EscapeString(m.BackgroundImage), m.Width, m.Height)
	}

	if opts.ShowZones && len(m.Zones) > 0 {
		b.WriteString(`<g class="zones">`)
		for _, zone := range m.Zones {
			writeZone(&b, zone, opts.ZoneOpacity)
		}
		b.WriteString(`</g>`)
	}

	for _, item := range m.Items {
		writeItem(&b, item, opts)
	}

	if opts.ShowLegend {
		writeLegend(&b, opts.Colors)
	}

	b.WriteString(`</svg>`)

	return b.String()
}

func writeZone(b *strings.Builder, zone domain.Zone, opacity float64) {
	if len(zone.Points) < 3 {
		return
	}

	color := zone.Color
	if color == "" {
		color = "#6200EA"
	}

	points := make([]string, len(zone.Points))
	for i, p := range zone.Points {
		points[i] = fmt.Sprintf("%g,%g", p[0], p[1])
	}

	fmt.Fprintf(b,
		`<polygon points="%s" fill="%s" fill-opacity="%g" stroke="%s" stroke-width="2" data-zone-id="%s"/>`,
		strings.Join(points, " "), color, opacity, color, html.EscapeString(zone.ID))

	if zone.Name != "" {
		var cx, cy float64
		for _, p := range zone.Points {
			cx += p[0]
			cy += p[1]
		}
		cx /= float64(len(zone.Points))
		cy /= float64(len(zone.Points))

		fmt.Fprintf(b,
			`<text x="%g" y="%g" text-anchor="middle" dominant-baseline="middle" fill="%s" font-size="14" font-weight="bold">%s</text>`,
			cx, cy, color, html.EscapeString(zone.Name))
	}
}

func writeItem(b *strings.Builder, item *domain.Item, opts SVGOptions) {
	color, ok := opts.Colors[item.Status]
	if !ok {
		color = opts.Colors[domain.ItemAvailable]
	}

	transform := ""
	if item.Rotation != 0 {
		transform = fmt.Sprintf(` transform="rotate(%g %g %g)"`, item.Rotation, item.X, item.Y)
	}

	switch item.Shape {
	case domain.ShapeRect:
		fmt.Fprintf(b,
			`<rect x="%g" y="%g" width="%g" height="%g" rx="4" fill="%s" stroke="#000" stroke-width="1" data-item-id="%s"%s/>`,
			item.X-item.Width/2, item.Y-item.Height/2, item.Width, item.Height,
			color, html.EscapeString(item.ID), transform)

	case domain.ShapeCircle:
		fmt.Fprintf(b,
			`<circle cx="%g" cy="%g" r="%g" fill="%s" stroke="#000" stroke-width="1" data-item-id="%s"/>`,
			item.X, item.Y, math.Min(item.Width, item.Height)/2,
			color, html.EscapeString(item.ID))

		// Round tables get a smaller inner circle for the tabletop.
		if item.Type == domain.ItemTypeTable {
			fmt.Fprintf(b,
				`<circle cx="%g" cy="%g" r="%g" fill="#FFF" stroke="#000" stroke-width="1"/>`,
				item.X, item.Y, math.Min(item.Width, item.Height)/4)
		}

	case domain.ShapePolygon:
		if len(item.Points) < 3 {
			return
		}

		points := make([]string, len(item.Points))
		for i, p := range item.Points {
			points[i] = fmt.Sprintf("%g,%g", p[0]+item.X, p[1]+item.Y)
		}

		fmt.Fprintf(b,
			`<polygon points="%s" fill="%s" stroke="#000" stroke-width="1" data-item-id="%s"%s/>`,
			strings.Join(points, " "), color, html.EscapeString(item.ID), transform)
	}

	if opts.ShowLabels && item.Label != "" {
		fmt.Fprintf(b,
			`<text x="%g" y="%g" text-anchor="middle" dominant-baseline="middle" fill="#000" font-size="12"%s>%s</text>`,
			item.X, item.Y, transform, html.EscapeString(item.Label))
	}
}

func writeLegend(b *strings.Builder, colors map[domain.ItemStatus]string) {
	statuses := []domain.ItemStatus{
		domain.ItemAvailable,
		domain.ItemReserved,
		domain.ItemOccupied,
		domain.ItemDisabled,
		domain.ItemMaintenance,
	}

	b.WriteString(`<g class="legend">`)

	for i, status := range statuses {
		y := 20 + float64(i)*22

		fmt.Fprintf(b, `<rect x="10" y="%g" width="16" height="16" fill="%s" stroke="#000"/>`, y, colors[status])
		fmt.Fprintf(b, `<text x="32" y="%g" font-size="12" dominant-baseline="hanging">%s</text>`, y+2, status)
	}

	b.WriteString(`</g>`)
}
