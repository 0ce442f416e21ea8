package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

// RoomRepo reads the room catalog.  Rooms are reference data maintained by
// the seeder; the API never mutates them, so only lookups live here (the
// seeder has its own write path).
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

const roomColumns = "id,name,type,description,price_per_night,max_guests,amenities,image_url,is_available,created_at,updated_at"

// List returns all rooms ordered by nightly price ascending.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM rooms ORDER BY price_per_night ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0, 16)
	for rows.Next() {
		room, err := scanRoom(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

// GetByID fetches a single room, mapping an unknown id to ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id=? LIMIT 1", id)
	room, err := scanRoom(row.Scan)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return room, err
}

// scanRoom reads one room row, decoding the JSON-encoded amenities column.
func scanRoom(scan func(dest ...any) error) (model.Room, error) {
	var (
		room      model.Room
		amenities sql.NullString
		desc      sql.NullString
	)
	err := scan(&room.ID, &room.Name, &room.Type, &desc, &room.PricePerNight,
		&room.MaxGuests, &amenities, &room.ImageURL, &room.IsAvailable,
		&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return model.Room{}, err
	}
	room.Description = desc.String
	room.Amenities = []string{}
	if amenities.Valid && amenities.String != "" {
		if err := json.Unmarshal([]byte(amenities.String), &room.Amenities); err != nil {
			return model.Room{}, err
		}
	}
	return room, nil
}
