package item

import (
	"context"
	"errors"

	"github.com/orgball2608/scenefeed/internal/domain"
)

var ErrEmptyBatch = errors.New("no items to create")

type SortKey string

const (
	SortDateDesc    SortKey = "-date"
	SortCreatedDesc SortKey = "-created_at"
	// SortRecentDesc orders by posting time, falling back to the event date,
	// so undated posts compete with dated events under a limit.
	SortRecentDesc SortKey = "-recent"
)

// ListOptions narrows a List call. Zero values mean "no restriction".
type ListOptions struct {
	Sources         []domain.Source
	ExcludeStatuses []domain.Status
	OrganizerEmails []string
	SortBy          SortKey
	Limit           uint64
}

//go:generate go run go.uber.org/mock/mockgen -source=item.go -destination=mocks/mock.go
type Repository interface {
	// List returns items matching opts
	List(ctx context.Context, opts ListOptions) ([]domain.FeedItem, error)

	// BulkCreate inserts items, skipping ids that already exist
	BulkCreate(ctx context.Context, items []domain.FeedItem) error
}
