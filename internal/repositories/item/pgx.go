package item

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/repositories"
	"github.com/orgball2608/scenefeed/pkg/logger"
)

const table = "feed_items"

var columns = []string{
	"id", "title", "description", "source", "status", "date", "posted_at",
	"organizer_email", "organizer_name", "category", "scene_tags", "privacy_level",
	"is_promotional", "latitude", "longitude", "location", "venue_name",
}

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("FeedItemRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func listQuery(opts ListOptions) (string, []any, error) {
	builder := repositories.SqBuilder.
		Select(columns...).
		From(table)

	if len(opts.Sources) > 0 {
		builder = builder.Where(sq.Eq{"source": opts.Sources})
	}
	if len(opts.ExcludeStatuses) > 0 {
		builder = builder.Where(sq.NotEq{"status": opts.ExcludeStatuses})
	}
	if len(opts.OrganizerEmails) > 0 {
		builder = builder.Where(sq.Eq{"organizer_email": opts.OrganizerEmails})
	}

	switch opts.SortBy {
	case SortDateDesc:
		builder = builder.OrderBy("date DESC NULLS LAST", "created_at DESC")
	case SortRecentDesc:
		builder = builder.OrderBy("COALESCE(posted_at, date) DESC NULLS LAST", "created_at DESC")
	default:
		builder = builder.OrderBy("created_at DESC")
	}

	if opts.Limit > 0 {
		builder = builder.Limit(opts.Limit)
	}

	return builder.ToSql()
}

func (r *PgxRepository) List(ctx context.Context, opts ListOptions) ([]domain.FeedItem, error) {
	query, args, err := listQuery(opts)
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feed items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.FeedItem, 0)
	for rows.Next() {
		var it domain.FeedItem
		err := rows.Scan(
			&it.ID,
			&it.Title,
			&it.Description,
			&it.Source,
			&it.Status,
			&it.Date,
			&it.Timestamp,
			&it.OrganizerEmail,
			&it.OrganizerName,
			&it.Category,
			&it.SceneTags,
			&it.PrivacyLevel,
			&it.IsPromotional,
			&it.Latitude,
			&it.Longitude,
			&it.Location,
			&it.VenueName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feed item row: %w", err)
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feed item rows: %w", err)
	}

	return items, nil
}

func (r *PgxRepository) BulkCreate(ctx context.Context, items []domain.FeedItem) error {
	if len(items) == 0 {
		return ErrEmptyBatch
	}

	builder := repositories.SqBuilder.
		Insert(table).
		Columns(columns...).
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		if it.SceneTags == nil {
			it.SceneTags = []string{}
		}
		if it.PrivacyLevel == "" {
			it.PrivacyLevel = domain.PrivacyPublic
		}
		builder = builder.Values(
			it.ID, it.Title, it.Description, it.Source, it.Status, it.Date, it.Timestamp,
			it.OrganizerEmail, it.OrganizerName, it.Category, it.SceneTags, it.PrivacyLevel,
			it.IsPromotional, it.Latitude, it.Longitude, it.Location, it.VenueName,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert feed items: %w", err)
	}

	r.logger.Debug("Inserted feed items", "requested", len(items), "inserted", tag.RowsAffected())
	return nil
}
