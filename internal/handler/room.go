package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/repository"
)

// RoomHandler exposes the public room catalog.  Both endpoints are
// unauthenticated and sit behind the response cache middleware.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// List handles GET /rooms: all rooms, cheapest first.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get handles GET /rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, room)
}
