package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/taskboard/internal/core/domain"
)

func TestCategoryHandler_List(t *testing.T) {
	e := newTestEcho()
	categories := &stubCategoryService{
		listFn: func(ctx context.Context) ([]*domain.Category, error) {
			// the service returns them sorted already
			return []*domain.Category{
				{ID: "c1", CategoryName: "Alpha"},
				{ID: "c2", CategoryName: "Mike"},
				{ID: "c3", CategoryName: "Zeta"},
			}, nil
		},
	}
	handler := NewCategoryHandler(categories)

	c, rec := newJSONContext(e, http.MethodGet, "/get_category", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Categories []map[string]any `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Categories) != 3 || resp.Categories[0]["category_name"] != "Alpha" {
		t.Fatalf("unexpected listing: %+v", resp.Categories)
	}
}

func TestCategoryHandler_Create(t *testing.T) {
	e := newTestEcho()
	categories := &stubCategoryService{
		createFn: func(ctx context.Context, name string) (*domain.Category, error) {
			if name != "Chores" {
				t.Fatalf("unexpected name: %q", name)
			}
			return &domain.Category{ID: "c1", CategoryName: name}, nil
		},
	}
	handler := NewCategoryHandler(categories)

	c, rec := newJSONContext(e, http.MethodPost, "/add_category", `{"category_name":"Chores"}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestCategoryHandler_Create_MissingName(t *testing.T) {
	e := newTestEcho()
	handler := NewCategoryHandler(&stubCategoryService{})

	c, _ := newJSONContext(e, http.MethodPost, "/add_category", `{}`)
	err := handler.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestCategoryHandler_Update_NotFound(t *testing.T) {
	e := newTestEcho()
	categories := &stubCategoryService{
		updateFn: func(ctx context.Context, id, name string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNotFound
		},
	}
	handler := NewCategoryHandler(categories)

	c, _ := newJSONContext(e, http.MethodPost, "/edit_category/missing", `{"category_name":"X"}`)
	c.SetParamNames("category_id")
	c.SetParamValues("missing")

	if err := handler.Update(c); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryHandler_EditForm(t *testing.T) {
	e := newTestEcho()
	categories := &stubCategoryService{
		getFn: func(ctx context.Context, id string) (*domain.Category, error) {
			if id != "c1" {
				return nil, domain.ErrCategoryNotFound
			}
			return &domain.Category{ID: "c1", CategoryName: "Chores"}, nil
		},
	}
	handler := NewCategoryHandler(categories)

	c, rec := newJSONContext(e, http.MethodGet, "/edit_category/c1", "")
	c.SetParamNames("category_id")
	c.SetParamValues("c1")

	if err := handler.EditForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["category_name"] != "Chores" {
		t.Fatalf("unexpected category: %+v", resp)
	}
}
