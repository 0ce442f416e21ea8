package database

import (
	"context"
	"database/sql"
)

// schemaStatements creates the three application tables.  Statements are
// idempotent so the server can bootstrap an empty database on first boot
// without a separate migration step.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		full_name VARCHAR(255) NOT NULL DEFAULT '',
		role VARCHAR(32) NOT NULL DEFAULT 'customer',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS rooms (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(32) NOT NULL,
		description TEXT,
		price_per_night DECIMAL(10,2) NOT NULL,
		max_guests INT UNSIGNED NOT NULL,
		amenities TEXT,
		image_url VARCHAR(1024) NOT NULL DEFAULT '',
		is_available TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		room_id BIGINT UNSIGNED NOT NULL,
		check_in_date CHAR(10) NOT NULL,
		check_out_date CHAR(10) NOT NULL,
		num_guests INT UNSIGNED NOT NULL,
		total_price DECIMAL(10,2) NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'pending',
		special_requests TEXT,
		payment_id VARCHAR(255) NOT NULL DEFAULT '',
		order_id VARCHAR(255) NOT NULL DEFAULT '',
		version BIGINT UNSIGNED NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_bookings_user (user_id, created_at),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_bookings_room FOREIGN KEY (room_id) REFERENCES rooms (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema runs the idempotent schema statements against db.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
