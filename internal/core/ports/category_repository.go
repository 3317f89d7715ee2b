package ports

import (
	"context"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
// There is no delete: categories are append/edit-only.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Replace(ctx context.Context, id string, c *domain.Category) error
}
