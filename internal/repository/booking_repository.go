package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

// BookingRepo owns all reads and writes of booking records.  Status
// transitions go through compare-and-swap updates keyed on the version
// column so that concurrent cancel/confirm requests against the same
// booking cannot silently overwrite each other.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,user_id,room_id,check_in_date,check_out_date,num_guests,total_price,status,special_requests,payment_id,order_id,version,created_at,updated_at"

// Create inserts a new booking and populates its generated ID.  The caller
// is responsible for having computed TotalPrice and validated the dates.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO bookings
		 (user_id, room_id, check_in_date, check_out_date, num_guests, total_price, status, special_requests)
		 VALUES (?,?,?,?,?,?,?,?)`,
		b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.NumGuests,
		b.TotalPrice, b.Status, b.SpecialRequests)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking, mapping an unknown id to ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	var (
		b       model.Booking
		special sql.NullString
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id=? LIMIT 1", id).Scan(
		&b.ID, &b.UserID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate,
		&b.NumGuests, &b.TotalPrice, &b.Status, &special, &b.PaymentID,
		&b.OrderID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return model.Booking{}, err
	}
	b.SpecialRequests = special.String
	return b, nil
}

// BookingDetail is a booking joined with its room for display to the
// owning customer or an operator.
type BookingDetail struct {
	model.Booking
	Room model.Room `json:"room"`
}

const bookingJoinQuery = `SELECT
	b.id, b.user_id, b.room_id, b.check_in_date, b.check_out_date,
	b.num_guests, b.total_price, b.status, b.special_requests,
	b.payment_id, b.order_id, b.version, b.created_at, b.updated_at,
	r.id, r.name, r.type, r.description, r.price_per_night, r.max_guests,
	r.amenities, r.image_url, r.is_available, r.created_at, r.updated_at
	FROM bookings b JOIN rooms r ON r.id = b.room_id`

// ListByUser returns the user's bookings joined with their rooms, newest
// first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingJoinQuery+" WHERE b.user_id=? ORDER BY b.created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

// ListAll returns every booking joined with its room, newest first.  Used
// by the operator listing.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	rows, err := r.DB.QueryContext(ctx,
		bookingJoinQuery+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDetails(rows)
}

func collectDetails(rows *sql.Rows) ([]BookingDetail, error) {
	out := make([]BookingDetail, 0, 8)
	for rows.Next() {
		var (
			d         BookingDetail
			special   sql.NullString
			desc      sql.NullString
			amenities sql.NullString
		)
		err := rows.Scan(
			&d.ID, &d.UserID, &d.RoomID, &d.CheckInDate, &d.CheckOutDate,
			&d.NumGuests, &d.TotalPrice, &d.Status, &special,
			&d.PaymentID, &d.OrderID, &d.Version, &d.CreatedAt, &d.UpdatedAt,
			&d.Room.ID, &d.Room.Name, &d.Room.Type, &desc, &d.Room.PricePerNight,
			&d.Room.MaxGuests, &amenities, &d.Room.ImageURL, &d.Room.IsAvailable,
			&d.Room.CreatedAt, &d.Room.UpdatedAt)
		if err != nil {
			return nil, err
		}
		d.SpecialRequests = special.String
		d.Room.Description = desc.String
		d.Room.Amenities = []string{}
		if amenities.Valid && amenities.String != "" {
			if err := json.Unmarshal([]byte(amenities.String), &d.Room.Amenities); err != nil {
				return nil, err
			}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// UpdateStatusCAS moves a booking to a new status if and only if its
// version still matches the one the caller read.  A lost race returns
// ErrVersionConflict.
func (r *BookingRepo) UpdateStatusCAS(ctx context.Context, id, version uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=?, version=version+1 WHERE id=? AND version=?",
		status, id, version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}

// ConfirmPaymentCAS records a verified payment: status becomes confirmed
// and both gateway identifiers are stored, guarded by the version token.
func (r *BookingRepo) ConfirmPaymentCAS(ctx context.Context, id, version uint64, paymentID, orderID string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=?, payment_id=?, order_id=?, version=version+1 WHERE id=? AND version=?",
		model.StatusConfirmed, paymentID, orderID, id, version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrVersionConflict
	}
	return nil
}
