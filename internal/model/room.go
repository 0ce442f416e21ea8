package model

import "time"

// Room is static catalog data describing a bookable hotel room.  Rooms are
// created and updated out of band by the seeder; the booking workflow only
// ever reads them.
//
// Fields:
//  ID            – primary key identifier.
//  Name          – display name.
//  Type          – room category (single, double, suite, deluxe).
//  Description   – marketing copy shown on the room page.
//  PricePerNight – positive nightly rate in major currency units.
//  MaxGuests     – upper bound for num_guests on a booking.
//  Amenities     – ordered list of amenity labels.
//  ImageURL      – reference to the room photo.
//  IsAvailable   – listing flag; not an inventory check.
type Room struct {
	ID            uint64    `json:"id"`              // rooms.id
	Name          string    `json:"name"`            // rooms.name
	Type          string    `json:"type"`            // rooms.type
	Description   string    `json:"description"`     // rooms.description
	PricePerNight float64   `json:"price_per_night"` // rooms.price_per_night
	MaxGuests     uint32    `json:"max_guests"`      // rooms.max_guests
	Amenities     []string  `json:"amenities"`       // rooms.amenities (JSON-encoded TEXT)
	ImageURL      string    `json:"image_url"`       // rooms.image_url
	IsAvailable   bool      `json:"is_available"`    // rooms.is_available
	CreatedAt     time.Time `json:"created_at"`      // rooms.created_at
	UpdatedAt     time.Time `json:"updated_at"`      // rooms.updated_at
}
