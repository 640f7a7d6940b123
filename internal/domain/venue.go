package domain

import "encoding/json"

// Zone is a named polygonal region of a venue map. Zones carry rendering and
// grouping metadata only; they play no part in reservation admission.
type Zone struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Points [][2]float64 `json:"points"`
}

// VenueMap is the spatial container of all reservable items for one venue.
// Item order doubles as z-order for rendering and hit-testing; it has no
// meaning for the reservation engine.
type VenueMap struct {
	Items           []*Item           `json:"items"`
	Zones           []Zone            `json:"zones,omitempty"`
	Width           float64           `json:"width"`
	Height          float64           `json:"height"`
	BackgroundImage string            `json:"backgroundImage,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

func NewVenueMap(width, height float64) *VenueMap {
	if width == 0 {
		width = 800
	}
	if height == 0 {
		height = 600
	}

	return &VenueMap{Width: width, Height: height}
}

// AddItem appends the item to the map, filling zero-valued fields with the
// type defaults. Id uniqueness is the caller's responsibility; lookups assume
// it.
func (m *VenueMap) AddItem(item *Item) *VenueMap {
	item.applyDefaults()
	m.Items = append(m.Items, item)

	return m
}

func (m *VenueMap) RemoveItem(itemID string) *VenueMap {
	kept := m.Items[:0]

	for _, item := range m.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}

	m.Items = kept

	return m
}

// ItemByID returns the item with the given id, or nil when absent.
func (m *VenueMap) ItemByID(itemID string) *Item {
	for _, item := range m.Items {
		if item.ID == itemID {
			return item
		}
	}

	return nil
}

// ItemAtPosition returns the topmost item whose footprint contains the given
// coordinate, scanning items in reverse insertion order so that later items
// win, or nil when the point hits nothing.
func (m *VenueMap) ItemAtPosition(x, y float64) *Item {
	for i := len(m.Items) - 1; i >= 0; i-- {
		if m.Items[i].ContainsPoint(x, y) {
			return m.Items[i]
		}
	}

	return nil
}

func (m *VenueMap) ItemsByStatus(status ItemStatus) []*Item {
	var items []*Item

	for _, item := range m.Items {
		if item.Status == status {
			items = append(items, item)
		}
	}

	return items
}

func (m *VenueMap) ItemsByType(itemType ItemType) []*Item {
	var items []*Item

	for _, item := range m.Items {
		if item.Type == itemType {
			items = append(items, item)
		}
	}

	return items
}

func (m *VenueMap) AddZone(zone Zone) *VenueMap {
	m.Zones = append(m.Zones, zone)

	return m
}

func (m *VenueMap) RemoveZone(zoneID string) *VenueMap {
	kept := m.Zones[:0]

	for _, zone := range m.Zones {
		if zone.ID != zoneID {
			kept = append(kept, zone)
		}
	}

	m.Zones = kept

	return m
}

// ItemsInZone returns every item whose center lies inside the zone polygon.
// Zones with fewer than three points cannot enclose anything.
func (m *VenueMap) ItemsInZone(zoneID string) []*Item {
	var zone *Zone

	for i := range m.Zones {
		if m.Zones[i].ID == zoneID {
			zone = &m.Zones[i]
			break
		}
	}

	if zone == nil || len(zone.Points) < 3 {
		return nil
	}

	var items []*Item

	for _, item := range m.Items {
		if pointInPolygon(item.X, item.Y, zone.Points, 0, 0) {
			items = append(items, item)
		}
	}

	return items
}

// ParseVenueMap loads a venue map from its JSON representation, applying item
// defaults the same way AddItem does.
func ParseVenueMap(data []byte) (*VenueMap, error) {
	var m VenueMap

	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	if m.Width == 0 {
		m.Width = 800
	}
	if m.Height == 0 {
		m.Height = 600
	}

	for _, item := range m.Items {
		item.applyDefaults()
	}

	return &m, nil
}
