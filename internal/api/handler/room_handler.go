package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wfl/dashboard-api/internal/core/ports"
)

type RoomHandler struct {
	rooms ports.RoomService
}

func NewRoomHandler(rooms ports.RoomService) *RoomHandler {
	return &RoomHandler{rooms: rooms}
}

func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.rooms.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, nonNil(rooms))
}

func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.rooms.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	room, err := h.rooms.Create(c.Request().Context(), toRoom(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := bindStrict(c, &req); err != nil {
		return err
	}

	room, err := h.rooms.Update(c.Request().Context(), c.Param("id"), toRoomPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

func (h *RoomHandler) Delete(c echo.Context) error {
	if err := h.rooms.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
