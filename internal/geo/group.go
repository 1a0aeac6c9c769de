package geo

import (
	"strconv"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/pkg/formatter"
)

// Marker is one map pin. A marker with more than one item is a grouped marker.
type Marker struct {
	Key       string            `json:"key"`
	Latitude  float64           `json:"latitude"`
	Longitude float64           `json:"longitude"`
	Items     []domain.FeedItem `json:"items"`
}

func (m Marker) Grouped() bool {
	return len(m.Items) > 1
}

// Label is the text on the pin: the item title, or a count for grouped markers.
func (m Marker) Label() string {
	if !m.Grouped() {
		return m.Items[0].Title
	}
	return formatter.Plural(len(m.Items), "item", "items")
}

// Key formats coordinates as "lat,lng" using the shortest exact representation,
// so only identical coordinates share a key.
func Key(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// Group buckets items by exact coordinates in first-seen order. Items without
// both coordinates are left out.
func Group(items []domain.FeedItem) []Marker {
	markers := make([]Marker, 0)
	index := make(map[string]int)

	for _, item := range items {
		if !item.HasCoordinates() {
			continue
		}

		key := Key(*item.Latitude, *item.Longitude)
		if i, ok := index[key]; ok {
			markers[i].Items = append(markers[i].Items, item)
			continue
		}

		index[key] = len(markers)
		markers = append(markers, Marker{
			Key:       key,
			Latitude:  *item.Latitude,
			Longitude: *item.Longitude,
			Items:     []domain.FeedItem{item},
		})
	}

	return markers
}
