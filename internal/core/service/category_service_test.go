package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/taskforge/taskboard/internal/core/domain"
)

type stubCategoryRepo struct {
	categories []*domain.Category
	nextID     int
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	r.nextID++
	clone := *c
	clone.ID = fmt.Sprintf("cat_%d", r.nextID)
	r.categories = append(r.categories, &clone)
	out := clone
	return &out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCategoryRepo) Replace(_ context.Context, id string, c *domain.Category) error {
	for i, existing := range r.categories {
		if existing.ID == id {
			clone := *c
			clone.ID = id
			r.categories[i] = &clone
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func TestCategoryService_List_SortedByName(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	for _, name := range []string{"Zeta", "Alpha", "Mike"} {
		if _, err := svc.Create(context.Background(), name); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	categories, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	got := make([]string, len(categories))
	for i, c := range categories {
		got[i] = c.CategoryName
	}
	want := []string{"Alpha", "Mike", "Zeta"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCategoryService_Update(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	created, err := svc.Create(context.Background(), "Chores")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, "Errands")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.CategoryName != "Errands" {
		t.Fatalf("expected renamed category, got %+v", updated)
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.CategoryName != "Errands" {
		t.Fatalf("rename not persisted: %+v", got)
	}
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	svc := NewCategoryService(newStubCategoryRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "missing", "X"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}
