package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/domain"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

// MetricHandler serves the key figures shown on the dashboard and the
// per-service status board.
type MetricHandler struct {
	metrics  ports.MetricService
	statuses ports.SystemStatusService
}

func NewMetricHandler(metrics ports.MetricService, statuses ports.SystemStatusService) *MetricHandler {
	return &MetricHandler{metrics: metrics, statuses: statuses}
}

func (h *MetricHandler) ListMetrics(c echo.Context) error {
	metrics, err := h.metrics.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(metrics))
}

func (h *MetricHandler) CreateMetric(c echo.Context) error {
	var req createMetricRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	m, err := h.metrics.Create(c.Request().Context(), &domain.Metric{Name: req.Name, Value: *req.Value})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MetricHandler) UpdateMetric(c echo.Context) error {
	var req updateMetricRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	m, err := h.metrics.Update(c.Request().Context(), c.Param("id"), domain.MetricPatch{Name: req.Name, Value: req.Value})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *MetricHandler) DeleteMetric(c echo.Context) error {
	if err := h.metrics.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *MetricHandler) ListStatuses(c echo.Context) error {
	statuses, err := h.statuses.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(statuses))
}

func (h *MetricHandler) CreateStatus(c echo.Context) error {
	var req createSystemStatusRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	s, err := h.statuses.Create(c.Request().Context(), &domain.SystemStatus{
		Service: req.Service,
		Status:  domain.ServiceState(req.Status),
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *MetricHandler) UpdateStatus(c echo.Context) error {
	var req updateSystemStatusRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	s, err := h.statuses.Update(c.Request().Context(), c.Param("id"), toSystemStatusPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

func (h *MetricHandler) DeleteStatus(c echo.Context) error {
	if err := h.statuses.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
