package repository

import (
	"context"
	"errors"

	"github.com/LaryssaGabi/RotinaOdonto/internal/doubt/domain"
)

// ErrNotFound is returned when a doubt ID does not resolve to a document.
var ErrNotFound = errors.New("doubt not found")

// DoubtRepository defines the interface for knowledge-base data access
type DoubtRepository interface {
	// ListAll returns every doubt, newest first.
	ListAll(ctx context.Context) ([]*domain.Doubt, error)

	// FindByID returns the doubt or ErrNotFound.
	FindByID(ctx context.Context, id string) (*domain.Doubt, error)

	// Create stores a new doubt, assigning its ID when empty.
	Create(ctx context.Context, doubt *domain.Doubt) error

	// Update saves the full doubt document and refreshes updated_at.
	Update(ctx context.Context, doubt *domain.Doubt) error

	// Delete removes the doubt permanently.
	Delete(ctx context.Context, id string) error
}
