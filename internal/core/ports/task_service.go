package ports

import (
	"context"

	"github.com/taskforge/taskboard/internal/core/domain"
)

// TaskInput carries the submitted fields for creating or fully replacing a
// task. IsUrgent is already reduced to a bool by the transport layer; DueDate
// is passed through unvalidated.
type TaskInput struct {
	CategoryName    string
	TaskName        string
	TaskDescription string
	IsUrgent        bool
	DueDate         string
}

// TaskService defines use-case operations for tasks. Listing is public; every
// mutation requires the caller to supply the session username.
type TaskService interface {
	List(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, input TaskInput, username string) (*domain.Task, error)
	// Update replaces the whole task and reassigns CreatedBy to username.
	Update(ctx context.Context, id string, input TaskInput, username string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
