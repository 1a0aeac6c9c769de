package viewer

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/internal/repositories"
	"github.com/orgball2608/scenefeed/pkg/logger"
)

type PgxRepository struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewPgxRepository(pool *pgxpool.Pool, logger logger.Logger) *PgxRepository {
	return &PgxRepository{
		pool:   pool,
		logger: logger.WithComponent("ViewerRepo"),
	}
}

var _ Repository = (*PgxRepository)(nil)

func (r *PgxRepository) Me(ctx context.Context, email string) (*domain.Viewer, error) {
	query, args, err := repositories.SqBuilder.
		Select("email", "name", "followed_curators", "saved_item_ids").
		From("viewers").
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return r.scanOne(ctx, query, args)
}

func (r *PgxRepository) UpdateMe(ctx context.Context, email string, update Update) (*domain.Viewer, error) {
	builder := repositories.SqBuilder.
		Update("viewers").
		Set("updated_at", time.Now()).
		Where(sq.Eq{"email": email}).
		Suffix("RETURNING email, name, followed_curators, saved_item_ids")

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.FollowedCurators != nil {
		builder = builder.Set("followed_curators", nonNil(*update.FollowedCurators))
	}
	if update.SavedItemIDs != nil {
		builder = builder.Set("saved_item_ids", nonNil(*update.SavedItemIDs))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, repositories.ErrBadQuery
	}

	return r.scanOne(ctx, query, args)
}

func (r *PgxRepository) Create(ctx context.Context, v domain.Viewer) error {
	query, args, err := repositories.SqBuilder.
		Insert("viewers").
		Columns("email", "name", "followed_curators", "saved_item_ids").
		Values(v.Email, v.Name, nonNil(v.FollowedCurators), nonNil(v.SavedItemIDs)).
		ToSql()
	if err != nil {
		return repositories.ErrBadQuery
	}

	_, err = r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == repositories.UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	return nil
}

func (r *PgxRepository) scanOne(ctx context.Context, query string, args []interface{}) (*domain.Viewer, error) {
	var v domain.Viewer
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&v.Email,
		&v.Name,
		&v.FollowedCurators,
		&v.SavedItemIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load viewer: %w", err)
	}

	return &v, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
