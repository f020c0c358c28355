package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type TaskHandler struct {
	tasks ports.TaskService
}

func NewTaskHandler(tasks ports.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /api/tasks, ordered by due date (tasks without one first),
// then newest first.
//
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        assignee_id  query     string  false  "Only tasks assigned to this user"
// @Param        project_id   query     string  false  "Only tasks of this project"
// @Param        status       query     string  false  "open, in_progress or done"
// @Success      200          {array}   domain.Task
// @Failure      422          {object}  errorResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	status := domain.TaskStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return domain.Invalid("status must be one of: open in_progress done")
	}

	tasks, err := h.tasks.List(c.Request().Context(), ports.TaskFilter{
		AssigneeID: c.QueryParam("assignee_id"),
		ProjectID:  c.QueryParam("project_id"),
		Status:     status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(tasks))
}

// Get handles GET /api/tasks/:id.
func (h *TaskHandler) Get(c echo.Context) error {
	task, err := h.tasks.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Create handles POST /api/tasks.
func (h *TaskHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createTaskRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	task, err := h.tasks.Create(c.Request().Context(), p, toTask(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, task)
}

// Update handles PATCH /api/tasks/:id. Editors may change any field; the
// assignee may change status and description only.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Task ID"
// @Param        body  body      updateTaskRequest  true  "Fields to change"
// @Success      200   {object}  domain.Task
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/tasks/{id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req updateTaskRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	task, err := h.tasks.Update(c.Request().Context(), p, c.Param("id"), toTaskPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.tasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
