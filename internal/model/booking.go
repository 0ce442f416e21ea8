package model

import (
	"errors"
	"time"
)

// Booking statuses.  pending and confirmed are live states; completed and
// cancelled are terminal.  New bookings always start as pending and only a
// verified payment moves them to confirmed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// validNext encodes the legal status transitions.  No transition into
// completed is wired anywhere yet; it exists as a declared terminal state.
var validNext = map[string]map[string]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	return validNext[from][to]
}

// DateLayout is the wire and storage format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ErrBadDateRange is returned by Nights when the stay is empty or inverted.
var ErrBadDateRange = errors.New("check_out_date must be after check_in_date")

// Booking links a user, a room, a date range and a payment state.  The room
// price is snapshotted into TotalPrice at creation and never recomputed.
// Version is an optimistic concurrency token: every status transition is a
// compare-and-swap against it.
type Booking struct {
	ID              uint64    `json:"id"`                     // bookings.id
	UserID          uint64    `json:"user_id"`                // bookings.user_id
	RoomID          uint64    `json:"room_id"`                // bookings.room_id
	CheckInDate     string    `json:"check_in_date"`          // bookings.check_in_date (YYYY-MM-DD)
	CheckOutDate    string    `json:"check_out_date"`         // bookings.check_out_date (YYYY-MM-DD)
	NumGuests       uint32    `json:"num_guests"`             // bookings.num_guests
	TotalPrice      float64   `json:"total_price"`            // bookings.total_price
	Status          string    `json:"status"`                 // bookings.status
	SpecialRequests string    `json:"special_requests"`       // bookings.special_requests
	PaymentID       string    `json:"payment_id,omitempty"`   // bookings.payment_id
	OrderID         string    `json:"order_id,omitempty"`     // bookings.order_id
	Version         uint64    `json:"-"`                      // bookings.version
	CreatedAt       time.Time `json:"created_at"`             // bookings.created_at
	UpdatedAt       time.Time `json:"updated_at"`             // bookings.updated_at
}

// Nights returns the number of billable nights between two YYYY-MM-DD
// dates, rounding partial days up.  It fails with ErrBadDateRange when
// checkOut is not strictly after checkIn, and passes through parse errors
// for malformed dates.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0, err
	}
	if !out.After(in) {
		return 0, ErrBadDateRange
	}
	d := out.Sub(in)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights, nil
}

// TotalPrice computes the snapshot price for a stay: nights times the
// room's nightly rate.
func TotalPrice(checkIn, checkOut string, pricePerNight float64) (float64, error) {
	n, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return float64(n) * pricePerNight, nil
}
