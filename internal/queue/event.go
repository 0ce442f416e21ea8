// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a payment is verified and a
// booking transitions to confirmed.  It carries enough for downstream
// consumers (notifications, analytics) to act without querying the primary
// database.
type BookingConfirmedEvent struct {
	BookingID    uint64  `json:"booking_id"`
	UserID       uint64  `json:"user_id"`
	RoomID       uint64  `json:"room_id"`
	RoomName     string  `json:"room_name"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	NumGuests    uint32  `json:"num_guests"`
	TotalPrice   float64 `json:"total_price"`
	PaymentID    string  `json:"payment_id"`
	OrderID      string  `json:"order_id"`
	ConfirmedAt  string  `json:"confirmed_at"`
}
