package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/taskboard/internal/api/metrics"
	"github.com/taskforge/taskboard/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations. It also depends on
// the category service because the add/edit forms need the category list.
type TaskHandler struct {
	tasks      ports.TaskService
	categories ports.CategoryService
}

func NewTaskHandler(tasks ports.TaskService, categories ports.CategoryService) *TaskHandler {
	return &TaskHandler{tasks: tasks, categories: categories}
}

// List handles GET / and GET /get_task. Listing is public.
//
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  listTasksResponse
// @Router       /get_task [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.tasks.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTasksResponse{Tasks: toTaskResponses(tasks)})
}

// NewForm handles GET /add_task, returning the category list the add form needs.
//
// @Summary      Fetch the data backing the add-task form
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  taskFormResponse
// @Failure      401  {object}  errorResponse
// @Router       /add_task [get]
func (h *TaskHandler) NewForm(c echo.Context) error {
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, taskFormResponse{Categories: toCategoryResponses(categories)})
}

// Create handles POST /add_task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      taskRequest  true  "Task fields"
// @Success      201   {object}  taskResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /add_task [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := c.Get("username").(string)
	created, err := h.tasks.Create(c.Request().Context(), toTaskInput(req), username)
	if err != nil {
		return err
	}

	resp := toTaskResponse(created)
	metrics.TasksCreatedTotal.WithLabelValues(resp.IsUrgent).Inc()
	return c.JSON(http.StatusCreated, resp)
}

// EditForm handles GET /edit_task/:task_id, returning the existing record plus
// the category list the edit form needs.
//
// @Summary      Fetch the data backing the edit-task form
// @Tags         tasks
// @Produce      json
// @Param        task_id  path      string  true  "Task id"
// @Success      200      {object}  taskFormResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /edit_task/{task_id} [get]
func (h *TaskHandler) EditForm(c echo.Context) error {
	task, err := h.tasks.Get(c.Request().Context(), c.Param("task_id"))
	if err != nil {
		return err
	}
	categories, err := h.categories.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := toTaskResponse(task)
	return c.JSON(http.StatusOK, taskFormResponse{
		Task:       &resp,
		Categories: toCategoryResponses(categories),
	})
}

// Update handles POST /edit_task/:task_id. The submission replaces the whole
// record and reassigns created_by to the editing session's user.
//
// @Summary      Replace a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path      string       true  "Task id"
// @Param        body     body      taskRequest  true  "Task fields"
// @Success      200      {object}  taskResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /edit_task/{task_id} [post]
func (h *TaskHandler) Update(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := c.Get("username").(string)
	updated, err := h.tasks.Update(c.Request().Context(), c.Param("task_id"), toTaskInput(req), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toTaskResponse(updated))
}

// Delete handles GET /delete_task/:task_id. Permanent, no ownership check.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        task_id  path  string  true  "Task id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /delete_task/{task_id} [get]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("task_id")); err != nil {
		return err
	}
	metrics.TasksDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
