package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/ports"
)

// EventHandler serves calendar events.
type EventHandler struct {
	events ports.EventService
}

// NewEventHandler creates an EventHandler backed by the given service.
func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /api/events, ordered by start ascending.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        start_from  query     string  false  "RFC 3339 lower bound on start"
// @Param        start_to    query     string  false  "RFC 3339 upper bound on start"
// @Param        room_id     query     string  false  "Only events in this room"
// @Param        project_id  query     string  false  "Only events of this project"
// @Success      200         {array}   domain.Event
// @Failure      422         {object}  errorResponse
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	f := ports.EventFilter{
		RoomID:    c.QueryParam("room_id"),
		ProjectID: c.QueryParam("project_id"),
	}

	var err error
	if f.StartFrom, err = queryTime(c, "start_from"); err != nil {
		return err
	}
	if f.StartTo, err = queryTime(c, "start_to"); err != nil {
		return err
	}

	events, err := h.events.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(events))
}

// Get handles GET /api/events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.events.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /api/events.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event"
// @Success      201   {object}  domain.Event
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	var req createEventRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	event, err := h.events.Create(c.Request().Context(), p, toEvent(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /api/events/:id.
func (h *EventHandler) Update(c echo.Context) error {
	var req updateEventRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	event, err := h.events.Update(c.Request().Context(), c.Param("id"), toEventPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	if err := h.events.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
