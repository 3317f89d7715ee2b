package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/taskforge/taskboard/internal/core/domain"
	"github.com/taskforge/taskboard/internal/core/ports"
)

type CategoryService struct {
	repo ports.CategoryRepository
	log  zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

// List returns all categories sorted ascending by name, case-sensitive byte
// order.
func (s *CategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CategoryName < categories[j].CategoryName
	})
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	created, err := s.repo.Create(ctx, &domain.Category{CategoryName: name})
	if err != nil {
		s.log.Error().Err(err).Str("category_name", name).Msg("failed to create category")
		return nil, err
	}

	s.log.Info().Str("category_id", created.ID).Str("category_name", name).Msg("category created")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, name string) (*domain.Category, error) {
	category := &domain.Category{ID: id, CategoryName: name}
	if err := s.repo.Replace(ctx, id, category); err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", id).Str("category_name", name).Msg("category replaced")
	return category, nil
}
