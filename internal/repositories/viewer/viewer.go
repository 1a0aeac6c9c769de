package viewer

import (
	"context"

	"github.com/orgball2608/scenefeed/internal/domain"
	"github.com/orgball2608/scenefeed/pkg/errors"
)

var (
	ErrAlreadyExists = errors.New("viewer already exists")
	ErrNotFound      = errors.Wrap(errors.ErrNotFound, "viewer not found")
)

// Update carries the fields to change; nil fields are left untouched.
type Update struct {
	Name             *string
	FollowedCurators *[]string
	SavedItemIDs     *[]string
}

//go:generate go run go.uber.org/mock/mockgen -source=viewer.go -destination=mocks/mock.go
type Repository interface {
	// Me returns the viewer identified by email
	Me(ctx context.Context, email string) (*domain.Viewer, error)

	// UpdateMe applies a partial update and returns the stored viewer
	UpdateMe(ctx context.Context, email string, update Update) (*domain.Viewer, error)

	// Create adds a new viewer
	Create(ctx context.Context, viewer domain.Viewer) error
}
