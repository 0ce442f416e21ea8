package main // Room catalog seeder: reloads the rooms table from a JSON file

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/database"
)

// seedFile mirrors the shape of rooms.json: a top-level "rooms" array.
type seedFile struct {
	Rooms []seedRoom `json:"rooms"`
}

type seedRoom struct {
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"price_per_night"`
	MaxGuests     uint32   `json:"max_guests"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
	IsAvailable   *bool    `json:"is_available"` // defaults to true when absent
}

func main() {
	path := flag.String("file", "rooms.json", "path to the rooms JSON file")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read %s: %v", *path, err)
	}
	var sf seedFile
	if err := json.Unmarshal(raw, &sf); err != nil {
		log.Fatalf("parse %s: %v", *path, err)
	}
	if len(sf.Rooms) == 0 {
		log.Fatalf("%s contains no rooms", *path)
	}

	if err := reload(ctx, db, sf.Rooms); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("seeded %d rooms", len(sf.Rooms))
}

// reload replaces the room catalog inside a single transaction so a failed
// seed never leaves the table half-populated.  Existing rooms referenced by
// bookings keep their rows only if the delete is allowed; a populated
// production database should not be re-seeded.
func reload(ctx context.Context, db *sql.DB, rooms []seedRoom) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rooms"); err != nil {
		return err
	}
	for _, r := range rooms {
		amenities, err := json.Marshal(r.Amenities)
		if err != nil {
			return err
		}
		available := true
		if r.IsAvailable != nil {
			available = *r.IsAvailable
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rooms (name, type, description, price_per_night, max_guests, amenities, image_url, is_available)
			 VALUES (?,?,?,?,?,?,?,?)`,
			r.Name, r.Type, r.Description, r.PricePerNight, r.MaxGuests,
			string(amenities), r.ImageURL, available); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}
