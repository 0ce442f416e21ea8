package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

func TestBookingCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(uint64(7), uint64(3), "2025-06-01", "2025-06-04", uint32(2), 450.0, model.StatusPending, "late checkout please").
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := NewBookingRepo(db)
	b := model.Booking{
		UserID:          7,
		RoomID:          3,
		CheckInDate:     "2025-06-01",
		CheckOutDate:    "2025-06-04",
		NumGuests:       2,
		TotalPrice:      450,
		Status:          model.StatusPending,
		SpecialRequests: "late checkout please",
	}
	if err := repo.Create(context.Background(), &b); err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.ID != 11 {
		t.Fatalf("id=%d want 11", b.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows(bookingTestColumns()))

	repo := NewBookingRepo(db)
	if _, err := repo.GetByID(context.Background(), 99); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateStatusCASConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// zero rows affected: the version moved underneath the caller
	mock.ExpectExec("UPDATE bookings SET status=(.+) WHERE id=(.+) AND version=").
		WithArgs(model.StatusCancelled, uint64(11), uint64(0)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBookingRepo(db)
	if err := repo.UpdateStatusCAS(context.Background(), 11, 0, model.StatusCancelled); err != ErrVersionConflict {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
}

func TestConfirmPaymentCASRecordsGatewayIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status=(.+), payment_id=(.+), order_id=").
		WithArgs(model.StatusConfirmed, "pay_9", "order_9", uint64(11), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewBookingRepo(db)
	if err := repo.ConfirmPaymentCAS(context.Background(), 11, 2, "pay_9", "order_9"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// bookingTestColumns matches the scan order of GetByID.
func bookingTestColumns() []string {
	return []string{
		"id", "user_id", "room_id", "check_in_date", "check_out_date",
		"num_guests", "total_price", "status", "special_requests",
		"payment_id", "order_id", "version", "created_at", "updated_at",
	}
}

// bookingTestRow builds a row for the given booking in scan order.
func bookingTestRow(b model.Booking) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(bookingTestColumns()).AddRow(
		b.ID, b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate,
		b.NumGuests, b.TotalPrice, b.Status, b.SpecialRequests,
		b.PaymentID, b.OrderID, b.Version, now, now,
	)
}

func TestBookingGetByIDRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	want := model.Booking{
		ID: 11, UserID: 7, RoomID: 3,
		CheckInDate: "2025-06-01", CheckOutDate: "2025-06-04",
		NumGuests: 2, TotalPrice: 450, Status: model.StatusPending,
		SpecialRequests: "quiet floor", Version: 1,
	}
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(uint64(11)).
		WillReturnRows(bookingTestRow(want))

	repo := NewBookingRepo(db)
	got, err := repo.GetByID(context.Background(), 11)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != want.UserID || got.Status != want.Status || got.TotalPrice != want.TotalPrice || got.Version != want.Version {
		t.Fatalf("got %+v want %+v", got, want)
	}
}
