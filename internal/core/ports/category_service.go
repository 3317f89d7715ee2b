package ports

import (
	"context"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	// List returns all categories sorted ascending by name (byte order).
	List(ctx context.Context) ([]*domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, id string, name string) (*domain.Category, error)
}
