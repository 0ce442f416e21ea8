package router // package router wires HTTP routes to handlers and middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
	"github.com/NathaNJOY-191/IN-OUT/internal/handler"
	"github.com/NathaNJOY-191/IN-OUT/internal/middleware"
	"github.com/NathaNJOY-191/IN-OUT/internal/model"
)

// Handlers groups everything the router needs to register the full API
// surface.  All fields must be non-nil.
type Handlers struct {
	Auth    *handler.AuthHandler
	Rooms   *handler.RoomHandler
	Booking *handler.BookingHandler
	Payment *handler.PaymentHandler
}

// Register attaches all application routes to the provided Echo instance.
//
// Route map:
//
//	GET  /healthz                   liveness
//	POST /auth/signup               rate limited
//	POST /auth/signin               rate limited
//	GET  /auth/me                   bearer token
//	GET  /rooms                     cached
//	GET  /rooms/:id                 cached
//	GET  /bookings/mine             bearer token
//	POST /bookings                  bearer token
//	POST /bookings/:id/cancel       bearer token, owner or admin
//	GET  /admin/bookings            bearer token, admin only
//	POST /create-order              bearer token
//	POST /verify-payment            bearer token, owner or admin
//
// rdb may be nil; the rate limiter and response cache then pass through.
func Register(e *echo.Echo, cfg config.Config, h Handlers, rdb *redis.Client) {
	// Friendly root so opening the server in a browser shows something useful.
	e.GET("/", func(c echo.Context) error {
		return c.String(200, "In-out API is running. See /rooms and /auth endpoints.")
	})
	e.GET("/healthz", handler.Health)

	// Credential endpoints sit behind the token bucket so password guessing
	// is throttled per client IP.
	limited := e.Group("/auth", middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	limited.POST("/signup", h.Auth.Signup)
	limited.POST("/signin", h.Auth.Signin)

	// The room catalog is public, read-mostly reference data; serve repeats
	// from the Redis response cache.
	cached := e.Group("/rooms", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	cached.GET("", h.Rooms.List)
	cached.GET("/:id", h.Rooms.Get)

	// Everything below requires a valid session token.
	auth := middleware.JWTAuth(cfg.JWTSecret)
	e.GET("/auth/me", h.Auth.Me, auth)

	e.GET("/bookings/mine", h.Booking.Mine, auth)
	e.POST("/bookings", h.Booking.Create, auth)
	e.POST("/bookings/:id/cancel", h.Booking.Cancel, auth)

	e.GET("/admin/bookings", h.Booking.ListAll, auth, middleware.RequireRole(model.RoleAdmin))

	e.POST("/create-order", h.Payment.CreateOrder, auth)
	e.POST("/verify-payment", h.Payment.VerifyPayment, auth)
}
