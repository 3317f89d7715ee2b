package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/taskforge/taskboard/internal/core/domain"
	"github.com/taskforge/taskboard/internal/core/ports"
)

type TaskService struct {
	repo ports.TaskRepository
	log  zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, log zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, log: log}
}

// List returns every task in insertion order. Listing is public.
func (s *TaskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id string) (*domain.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) Create(ctx context.Context, input ports.TaskInput, username string) (*domain.Task, error) {
	task := &domain.Task{
		CategoryName:    input.CategoryName,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		IsUrgent:        input.IsUrgent,
		DueDate:         input.DueDate,
		CreatedBy:       username,
	}

	created, err := s.repo.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("task_name", input.TaskName).Msg("failed to create task")
		return nil, err
	}

	s.log.Info().Str("task_id", created.ID).Str("created_by", username).Msg("task created")
	return created, nil
}

// Update replaces the whole document with the submitted fields. CreatedBy is
// reset to the editing session's user, so edits reassign ownership.
func (s *TaskService) Update(ctx context.Context, id string, input ports.TaskInput, username string) (*domain.Task, error) {
	task := &domain.Task{
		ID:              id,
		CategoryName:    input.CategoryName,
		TaskName:        input.TaskName,
		TaskDescription: input.TaskDescription,
		IsUrgent:        input.IsUrgent,
		DueDate:         input.DueDate,
		CreatedBy:       username,
	}

	if err := s.repo.Replace(ctx, id, task); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", id).Str("created_by", username).Msg("task replaced")
	return task, nil
}

// Delete removes the task permanently. Any authenticated user may delete any
// task; there is no ownership check and no soft delete.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("task_id", id).Msg("task deleted")
	return nil
}
