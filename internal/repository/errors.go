// Package repository implements data access for users, rooms and bookings on
// top of database/sql.  This file defines sentinel error values shared by the
// repositories so that handlers can map failure modes onto HTTP statuses
// without string matching.
package repository

import "errors"

// ErrEmailExists is returned when a signup collides with an already
// registered email.  Handlers translate this into HTTP 400.
var ErrEmailExists = errors.New("email already registered")

// ErrRoomNotFound is returned when a room id does not exist.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// ErrVersionConflict is returned when a compare-and-swap status update loses
// a race: the booking's version moved between read and write.  Handlers
// translate this into HTTP 409 so the caller can reload and retry.
var ErrVersionConflict = errors.New("booking version conflict")
