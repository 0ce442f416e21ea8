package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/model"
	"github.com/NathaNJOY-191/IN-OUT/internal/payment"
	"github.com/NathaNJOY-191/IN-OUT/internal/queue"
	"github.com/NathaNJOY-191/IN-OUT/internal/repository"
	queue_publisher "github.com/NathaNJOY-191/IN-OUT/internal/service"
)

// PaymentHandler bridges bookings to the payment gateway: it creates
// gateway orders and verifies the signed callbacks that confirm payment.
// Publish is swappable so tests can observe events without a broker.
type PaymentHandler struct {
	Cfg      config.Config
	Gateway  payment.OrderCreator
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
	Publish  func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

func NewPaymentHandler(cfg config.Config, gw payment.OrderCreator, b *repository.BookingRepo, r *repository.RoomRepo) *PaymentHandler {
	return &PaymentHandler{
		Cfg:      cfg,
		Gateway:  gw,
		Bookings: b,
		Rooms:    r,
		Publish:  queue_publisher.PublishBookingConfirmed,
	}
}

type createOrderReq struct {
	Amount float64 `json:"amount"`
}

type verifyPaymentReq struct {
	BookingID         uint64 `json:"bookingId"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// CreateOrder handles POST /create-order: registers an order with the
// gateway for the given amount in major currency units.  Any gateway
// failure surfaces as a generic 500; there are no retries, the caller
// re-initiates.
func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid amount"})
	}

	order, err := h.Gateway.CreateOrder(req.Amount)
	if err != nil {
		c.Logger().Errorf("create order failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error creating order"})
	}
	return c.JSON(http.StatusOK, order)
}

// VerifyPayment handles POST /verify-payment.  The callback signature is an
// HMAC over "order_id|payment_id" under the gateway's shared secret; a
// mismatch leaves the booking untouched.  Only the booking's owner (or an
// admin) may confirm it, even with a valid signature.  On success the
// booking moves to confirmed via compare-and-swap, both gateway ids are
// recorded, and a booking.confirmed event is published fire-and-forget.
func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Unauthorized"})
	}
	var req verifyPaymentReq
	if err := c.Bind(&req); err != nil || req.BookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error"})
	}
	if b.UserID != userID && !isAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden"})
	}

	if !payment.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature, h.Cfg.RazorpayKeySecret) {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Payment verification failed"})
	}

	if err := h.Bookings.ConfirmPaymentCAS(ctx, b.ID, b.Version, req.RazorpayPaymentID, req.RazorpayOrderID); err != nil {
		if err == repository.ErrVersionConflict {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Booking changed, reload and retry"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error verifying payment"})
	}

	h.publishConfirmed(b, req.RazorpayPaymentID, req.RazorpayOrderID)
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// publishConfirmed emits the booking.confirmed event in the background.  A
// broker failure only logs; the payment is already confirmed.
func (h *PaymentHandler) publishConfirmed(b model.Booking, paymentID, orderID string) {
	roomName := ""
	if room, err := h.Rooms.GetByID(context.Background(), b.RoomID); err == nil {
		roomName = room.Name
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:    b.ID,
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		RoomName:     roomName,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		NumGuests:    b.NumGuests,
		TotalPrice:   b.TotalPrice,
		PaymentID:    paymentID,
		OrderID:      orderID,
		ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Publish(ctx, ev)
	}()
}
