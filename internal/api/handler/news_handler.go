package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type NewsHandler struct {
	news ports.NewsService
}

func NewNewsHandler(news ports.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

// List handles GET /api/news.
//
// @Summary      List news, newest first
// @Tags         news
// @Produce      json
// @Param        tag         query     string  false  "Only news carrying this tag"
// @Param        is_public   query     bool    false  "Filter by visibility"
// @Param        since       query     string  false  "RFC 3339 lower bound on created_at"
// @Param        project_id  query     string  false  "Only news of this project"
// @Param        limit       query     int     false  "Page size, 1..100 (default 20)"
// @Success      200         {array}   domain.News
// @Failure      422         {object}  errorResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c echo.Context) error {
	f := ports.NewsFilter{
		ProjectID: c.QueryParam("project_id"),
		Tag:       c.QueryParam("tag"),
	}

	var err error
	if f.IsPublic, err = optionalBool(c, "is_public"); err != nil {
		return err
	}
	if f.Since, err = queryTime(c, "since"); err != nil {
		return err
	}
	if err := echo.QueryParamsBinder(c).Int("limit", &f.Limit).BindError(); err != nil {
		return queryError(err)
	}
	if c.QueryParam("limit") != "" && f.Limit < 1 {
		return domain.Invalid("limit must be between 1 and 100")
	}

	news, err := h.news.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(news))
}

// Get handles GET /api/news/:id.
func (h *NewsHandler) Get(c echo.Context) error {
	n, err := h.news.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Create handles POST /api/news. The caller is recorded as author.
func (h *NewsHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createNewsRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	n, err := h.news.Create(c.Request().Context(), p, toNews(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, n)
}

// Update handles PUT /api/news/:id.
func (h *NewsHandler) Update(c echo.Context) error {
	var req updateNewsRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	n, err := h.news.Update(c.Request().Context(), c.Param("id"), toNewsPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Delete handles DELETE /api/news/:id.
func (h *NewsHandler) Delete(c echo.Context) error {
	if err := h.news.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
