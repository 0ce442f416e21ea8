package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/model"
	"github.com/NathaNJOY-191/IN-OUT/internal/repository"
)

// BookingHandler implements the booking lifecycle for customers: create,
// list own bookings, cancel.  Ownership is enforced on every mutation; an
// admin may act on any booking.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
}

func NewBookingHandler(b *repository.BookingRepo, r *repository.RoomRepo) *BookingHandler {
	if b == nil || r == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Rooms: r}
}

type createBookingReq struct {
	RoomID          uint64 `json:"room_id"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumGuests       uint32 `json:"num_guests"`
	SpecialRequests string `json:"special_requests"`
}

// Create handles POST /bookings.  The total price is snapshotted from the
// room's current nightly rate; the booking always starts as pending and
// only a verified payment confirms it.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "room_id is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if req.NumGuests == 0 || req.NumGuests > room.MaxGuests {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid guest count"})
	}

	total, err := model.TotalPrice(req.CheckInDate, req.CheckOutDate, room.PricePerNight)
	if err != nil {
		if err == model.ErrBadDateRange {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid dates, want YYYY-MM-DD"})
	}

	b := model.Booking{
		UserID:          userID,
		RoomID:          room.ID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumGuests:       req.NumGuests,
		TotalPrice:      total,
		Status:          model.StatusPending,
		SpecialRequests: req.SpecialRequests,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": b.ID})
}

// Mine handles GET /bookings/mine: the caller's bookings joined with their
// rooms, newest first.
func (h *BookingHandler) Mine(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, list)
}

// ListAll handles GET /admin/bookings for operators.
func (h *BookingHandler) ListAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, list)
}

// Cancel handles POST /bookings/:id/cancel.  Only the owner (or an admin)
// may cancel.  Cancelling an already-cancelled booking is a no-op success;
// a booking in a terminal completed state cannot be cancelled.  The status
// write is a compare-and-swap, so a concurrent transition surfaces as 409.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if b.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
	}
	if b.Status == model.StatusCancelled {
		return c.JSON(http.StatusOK, echo.Map{"ok": true}) // idempotent repeat
	}
	if !model.CanTransition(b.Status, model.StatusCancelled) {
		return c.JSON(http.StatusConflict, echo.Map{"message": "Booking cannot be cancelled"})
	}

	if err := h.Bookings.UpdateStatusCAS(ctx, b.ID, b.Version, model.StatusCancelled); err != nil {
		if err == repository.ErrVersionConflict {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Booking changed, reload and retry"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
