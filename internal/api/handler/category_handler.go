package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/taskboard/internal/api/metrics"
	"github.com/taskforge/taskboard/internal/core/ports"
)

// CategoryHandler handles HTTP requests for category operations. Categories
// have no delete route: they are append/edit-only.
type CategoryHandler struct {
	categories ports.CategoryService
}

func NewCategoryHandler(categories ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /get_category. Public, sorted ascending by name.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  listCategoriesResponse
// @Router       /get_category [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listCategoriesResponse{Categories: toCategoryResponses(categories)})
}

// NewForm handles GET /add_category. The add form has no backing data; the
// route exists so the form fetch is guarded like every other mutation path.
//
// @Summary      Fetch the data backing the add-category form
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoryResponse
// @Failure      401  {object}  errorResponse
// @Router       /add_category [get]
func (h *CategoryHandler) NewForm(c echo.Context) error {
	return c.JSON(http.StatusOK, categoryResponse{})
}

// Create handles POST /add_category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category name"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /add_category [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.categories.Create(c.Request().Context(), req.CategoryName)
	if err != nil {
		return err
	}

	metrics.CategoriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCategoryResponse(created))
}

// EditForm handles GET /edit_category/:category_id.
//
// @Summary      Fetch the category backing the edit form
// @Tags         categories
// @Produce      json
// @Param        category_id  path      string  true  "Category id"
// @Success      200          {object}  categoryResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /edit_category/{category_id} [get]
func (h *CategoryHandler) EditForm(c echo.Context) error {
	category, err := h.categories.Get(c.Request().Context(), c.Param("category_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

// Update handles POST /edit_category/:category_id as a full replace.
//
// @Summary      Replace a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category_id  path      string           true  "Category id"
// @Param        body         body      categoryRequest  true  "Category name"
// @Success      200          {object}  categoryResponse
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /edit_category/{category_id} [post]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.categories.Update(c.Request().Context(), c.Param("category_id"), req.CategoryName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(updated))
}
