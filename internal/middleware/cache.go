package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/NathaNJOY-191/IN-OUT/internal/config"
)

// cachedResponse is what gets stored in Redis for a cacheable GET: enough
// to replay the response byte-for-byte.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter tees the response body into a buffer while forwarding it to
// the client, up to a size limit.
type captureWriter struct {
	http.ResponseWriter
	status  int
	buf     bytes.Buffer
	limit   int
	tooBig  bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.tooBig {
		if cw.limit > 0 && cw.buf.Len()+len(b) > cw.limit {
			cw.buf.Reset() // over limit: give up on caching this response
			cw.tooBig = true
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

// NewRedisCache returns a middleware that caches successful GET responses in
// Redis for the configured TTL.  The room catalog is read-mostly reference
// data, so serving it from cache keeps the hot listing endpoint off the
// database.  A nil Redis client disables caching entirely.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var cached cachedResponse
				if err := json.Unmarshal(raw, &cached); err == nil {
					if cached.ContentType != "" {
						c.Response().Header().Set(echo.HeaderContentType, cached.ContentType)
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(cached.Status)
					_, werr := c.Response().Write(cached.Body)
					return werr
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status == http.StatusOK && !cw.tooBig {
				payload, err := json.Marshal(cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				})
				if err == nil {
					// detached context: the request may already be done
					_ = rdb.SetEx(context.Background(), key, payload, cfg.TTL).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes route and query into a stable, bounded Redis key.
func cacheKey(prefix string, c echo.Context) string {
	tail := strings.Join([]string{c.Path(), c.Request().URL.RawQuery}, "?")
	sum := sha1.Sum([]byte(tail))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}
