package model

import "time"

// Roles assignable to a user.  Customers own their bookings; admins act as
// operators and may read or cancel any booking.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a registered account.  Identity (email) is immutable once
// created; the password is stored only as a bcrypt hash.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique, normalized to lower case.
//  PasswordHash – bcrypt hash of the password, never the plaintext.
//  FullName     – display name shown in the UI.
//  Role         – "customer" or "admin".
//  CreatedAt    – creation timestamp.
//  UpdatedAt    – last update timestamp.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FullName     string    // users.full_name
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}
