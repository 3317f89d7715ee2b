package ports

import (
	"context"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
// List returns tasks in store-native (insertion) order.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	// Replace overwrites the whole document. Fails with
	// domain.ErrTaskNotFound when id does not match an existing task.
	Replace(ctx context.Context, id string, t *domain.Task) error
	Delete(ctx context.Context, id string) error
}
