package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemReserved    ItemStatus = "reserved"
	ItemOccupied    ItemStatus = "occupied"
	ItemDisabled    ItemStatus = "disabled"
	ItemMaintenance ItemStatus = "maintenance"
)

func (s ItemStatus) Valid() bool {
	switch s {
	case ItemAvailable, ItemReserved, ItemOccupied, ItemDisabled, ItemMaintenance:
		return true
	}

	return false
}

type ItemType string

const (
	ItemTypeSeat     ItemType = "seat"
	ItemTypeTable    ItemType = "table"
	ItemTypeBooth    ItemType = "booth"
	ItemTypeChair    ItemType = "chair"
	ItemTypeScreen   ItemType = "screen"
	ItemTypeStage    ItemType = "stage"
	ItemTypePodium   ItemType = "podium"
	ItemTypeBar      ItemType = "bar"
	ItemTypeEntrance ItemType = "entrance"
)

type Shape string

const (
	ShapeRect    Shape = "rect"
	ShapeCircle  Shape = "circle"
	ShapePolygon Shape = "polygon"
)

// Item is a single reservable unit in a venue. The spatial fields (position,
// shape, size) are consumed only by hit-testing and the renderers; the
// reservation engine cares about ID and Status alone.
type Item struct {
	ID         string            `json:"id"`
	Label      string            `json:"label"`
	X          float64           `json:"x"`
	Y          float64           `json:"y"`
	Rotation   float64           `json:"rotation,omitempty"`
	Status     ItemStatus        `json:"status"`
	Type       ItemType          `json:"type"`
	Shape      Shape             `json:"shape"`
	Points     [][2]float64      `json:"points,omitempty"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Capacity   int               `json:"capacity"`
	ExtraPrice decimal.Decimal   `json:"extraPrice"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

func (i *Item) IsAvailable() bool {
	return i.Status == ItemAvailable
}

// applyDefaults fills zero-valued fields with the conventional defaults:
// available status, seat type, rect shape, capacity 1, and a type-dependent
// footprint (tables and booths are larger than seats).
func (i *Item) applyDefaults() {
	if i.Status == "" {
		i.Status = ItemAvailable
	}
	if i.Type == "" {
		i.Type = ItemTypeSeat
	}
	if i.Shape == "" {
		i.Shape = ShapeRect
	}
	if i.Capacity == 0 {
		i.Capacity = 1
	}

	if i.Width == 0 && i.Height == 0 {
		switch i.Type {
		case ItemTypeTable:
			i.Width, i.Height = 60, 60
		case ItemTypeBooth:
			i.Width, i.Height = 80, 40
		default:
			i.Width, i.Height = 30, 30
		}
	}
}

// ContainsPoint reports whether the given map coordinate falls inside this
// item's footprint, taking the item's rotation into account.
func (i *Item) ContainsPoint(x, y float64) bool {
	if i.Rotation != 0 {
		// Rotate the point into the item's local coordinate system and test
		// against the unrotated shape.
		radians := i.Rotation * math.Pi / 180
		cos := math.Cos(-radians)
		sin := math.Sin(-radians)

		dx := x - i.X
		dy := y - i.Y

		rx := dx*cos - dy*sin
		ry := dx*sin + dy*cos

		return i.containsPointNoRotation(rx+i.X, ry+i.Y)
	}

	return i.containsPointNoRotation(x, y)
}

func (i *Item) containsPointNoRotation(x, y float64) bool {
	switch i.Shape {
	case ShapeRect:
		return x >= i.X-i.Width/2 && x <= i.X+i.Width/2 &&
			y >= i.Y-i.Height/2 && y <= i.Y+i.Height/2

	case ShapeCircle:
		radius := math.Min(i.Width, i.Height) / 2
		dx := x - i.X
		dy := y - i.Y

		return dx*dx+dy*dy <= radius*radius

	case ShapePolygon:
		return pointInPolygon(x, y, i.Points, i.X, i.Y)
	}

	return false
}

// pointInPolygon runs a ray-casting test against a polygon whose points are
// relative to the given origin.
func pointInPolygon(x, y float64, points [][2]float64, originX, originY float64) bool {
	inside := false

	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		xi := points[i][0] + originX
		yi := points[i][1] + originY
		xj := points[j][0] + originX
		yj := points[j][1] + originY

		intersect := (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi
		if intersect {
			inside = !inside
		}
	}

	return inside
}
