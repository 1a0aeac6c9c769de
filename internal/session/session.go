// Package session holds per-viewer feed state: filters, loaded pages, the follow
// subscription and the scroll position.
package session

import (
	"context"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/geo"
	"github.com/orgball2608/scenefeed/internal/scroll"
)

// Visitor identifies who a request acts for. Email is empty for anonymous
// visitors, who are told apart by ID.
type Visitor struct {
	Email string
	ID    string
}

func (v Visitor) Anonymous() bool {
	return v.Email == ""
}

// Key names the session that holds the visitor's state. It is empty for an
// anonymous visitor without an ID, whose requests keep no state.
func (v Visitor) Key() string {
	switch {
	case v.Email != "":
		return "viewer:" + v.Email
	case v.ID != "":
		return "visitor:" + v.ID
	default:
		return ""
	}
}

// FeedRequest updates the session filters before loading a tab. Nil fields keep
// the current value.
type FeedRequest struct {
	Tab      domain.Tab
	Genres   []string
	Location *string
	Date     *domain.DateFilter
	Time     *domain.TimeOfDay
	// Offset > 0 pages through the last loaded result instead of reloading.
	Offset int
}

type Page struct {
	Tab     domain.Tab        `json:"tab"`
	Items   []domain.FeedItem `json:"items"`
	Offset  int               `json:"offset"`
	Total   int               `json:"total"`
	HasMore bool              `json:"has_more"`
}

type ScrollResult struct {
	Index         int     `json:"index"`
	Distance      float64 `json:"distance"`
	Emphasis      float64 `json:"emphasis"`
	Changed       bool    `json:"changed"`
	NeedsNextPage bool    `json:"needs_next_page"`
}

//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=mocks/mock.go
type Client interface {
	Feed(ctx context.Context, v Visitor, req FeedRequest) (*Page, error)
	Map(ctx context.Context, v Visitor, q geo.Query) ([]geo.Marker, error)
	// Follow stores the follow change and announces it on the event bus.
	Follow(ctx context.Context, viewerEmail, curatorEmail string, following bool) error
	// ToggleSave flips the saved state of an item and returns the new state.
	ToggleSave(ctx context.Context, viewerEmail, itemID string) (bool, error)
	// SetLocation debounces location text before it reaches the filters.
	SetLocation(v Visitor, text string)
	Scroll(v Visitor, layout scroll.Layout) ScrollResult
	Filters(v Visitor) domain.FilterState
}
