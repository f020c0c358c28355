package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wfl/dashboard-api/internal/api/metrics"
	"github.com/wfl/dashboard-api/internal/core/ports"
)

type StatusHandler struct {
	summary ports.SummaryService
	now     func() time.Time
}

func NewStatusHandler(summary ports.SummaryService, now func() time.Time) *StatusHandler {
	if now == nil {
		now = time.Now
	}
	return &StatusHandler{summary: summary, now: now}
}

// Health handles GET /api/status/health.
//
// @Summary      API heartbeat
// @Tags         status
// @Produce      json
// @Success      200  {object}  healthResponse
// @Router       /api/status/health [get]
func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "online", Timestamp: h.now().UTC()})
}

// Summary handles GET /api/status/summary.
//
// @Summary      Dashboard landing page summary
// @Tags         status
// @Produce      json
// @Success      200  {object}  dashboardSummaryResponse
// @Router       /api/status/summary [get]
func (h *StatusHandler) Summary(c echo.Context) error {
	defer observeSummary("dashboard")()

	s, err := h.summary.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardSummaryResponse{
		Projects:       nonNil(s.Projects),
		UpcomingEvents: nonNil(s.UpcomingEvents),
		RecentNews:     nonNil(s.RecentNews),
	})
}

// observeSummary starts a timer for the summary duration histogram; call the
// returned func when the view is built.
func observeSummary(view string) func() {
	timer := prometheus.NewTimer(metrics.SummaryDuration.WithLabelValues(view))
	return func() { timer.ObserveDuration() }
}
