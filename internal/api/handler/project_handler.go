package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type ProjectHandler struct {
	projects ports.ProjectService
	summary  ports.SummaryService
}

func NewProjectHandler(projects ports.ProjectService, summary ports.SummaryService) *ProjectHandler {
	return &ProjectHandler{projects: projects, summary: summary}
}

// List handles GET /api/projects.
//
// @Summary      List projects, newest first
// @Tags         projects
// @Produce      json
// @Param        status  query     string  false  "Filter by status (green, yellow, red)"
// @Success      200     {array}   domain.Project
// @Failure      422     {object}  errorResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	status := domain.ProjectStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return domain.Invalid("status must be one of: green yellow red")
	}

	projects, err := h.projects.List(c.Request().Context(), ports.ProjectFilter{Status: status})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(projects))
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.projects.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Summary handles GET /api/projects/:id/summary.
//
// @Summary      Project summary with task counts, upcoming events and recent news
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  projectSummaryResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/projects/{id}/summary [get]
func (h *ProjectHandler) Summary(c echo.Context) error {
	defer observeSummary("project")()

	s, err := h.summary.Project(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectSummary(s))
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project"
// @Success      201   {object}  domain.Project
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	project, err := h.projects.Create(c.Request().Context(), toProject(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Update handles PUT /api/projects/:id. Only the fields present in the body
// are changed.
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	project, err := h.projects.Update(c.Request().Context(), c.Param("id"), toProjectPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.projects.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
