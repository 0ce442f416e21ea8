package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/database"
	"github.com/NathaNJOY-191/IN-OUT/internal/handler"
	"github.com/NathaNJOY-191/IN-OUT/internal/payment"
	"github.com/NathaNJOY-191/IN-OUT/internal/queue"
	"github.com/NathaNJOY-191/IN-OUT/internal/repository"
	"github.com/NathaNJOY-191/IN-OUT/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)

	gateway := payment.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	h := router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, users),
		Rooms:   handler.NewRoomHandler(rooms),
		Booking: handler.NewBookingHandler(bookings, rooms),
		Payment: handler.NewPaymentHandler(cfg, gateway, bookings, rooms),
	}

	rdb := config.NewRedisClient() // nil when Redis is down; middleware degrades
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	// Consume booking.confirmed events in the background; the loop
	// reconnects on its own and never stops the server.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	router.Register(e, cfg, h, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
