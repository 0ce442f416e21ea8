package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

// testConfig is the config used across handler tests; low bcrypt cost keeps
// signup tests fast.
func testConfig() config.Config {
	return config.Config{
		JWTSecret:         "test-secret",
		TokenTTLDays:      7,
		BcryptCost:        4,
		RazorpayKeySecret: "gw-secret",
	}
}

// newTestContext builds an Echo context around an httptest request.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// asUser injects the identity claims the JWT middleware would have set.
// Numeric claims arrive as float64 after JWT decoding, so that is what the
// tests store.
func asUser(c echo.Context, id uint64, role string) {
	c.Set("user_id", float64(id))
	c.Set("email", "user@test.com")
	c.Set("role", role)
}

func userColumns() []string {
	return []string{"id", "email", "password_hash", "full_name", "role", "created_at", "updated_at"}
}

func roomColumns() []string {
	return []string{"id", "name", "type", "description", "price_per_night", "max_guests", "amenities", "image_url", "is_available", "created_at", "updated_at"}
}

func roomRow(r model.Room) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(roomColumns()).AddRow(
		r.ID, r.Name, r.Type, r.Description, r.PricePerNight, r.MaxGuests,
		`["WiFi"]`, r.ImageURL, r.IsAvailable, now, now,
	)
}

func bookingColumns() []string {
	return []string{
		"id", "user_id", "room_id", "check_in_date", "check_out_date",
		"num_guests", "total_price", "status", "special_requests",
		"payment_id", "order_id", "version", "created_at", "updated_at",
	}
}

func bookingRow(b model.Booking) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bookingColumns()).AddRow(
		b.ID, b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate,
		b.NumGuests, b.TotalPrice, b.Status, b.SpecialRequests,
		b.PaymentID, b.OrderID, b.Version, now, now,
	)
}
