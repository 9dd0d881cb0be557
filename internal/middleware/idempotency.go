package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key. A short-lived lock rejects a duplicate that arrives
// while the first request is still in flight.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := "idemp:" + c.FullPath() + ":" + idempKey
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if json.Unmarshal(val, &cached) == nil {
				c.Header("Content-Type", "application/json; charset=utf-8")
				c.Header("X-Idempotency-Replay", "true")
				c.Status(cached.Status)
				_, _ = c.Writer.Write(cached.Body)
				c.Abort()
				return
			}
		}

		locked, _ := rdb.SetNX(ctx, lockKey, "locked", 30*time.Second).Result()
		if !locked {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "A request with this idempotency key is already being processed",
			})
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if rec.Status() < http.StatusInternalServerError {
			payload, err := json.Marshal(cachedResponse{
				Status: rec.Status(),
				Body:   rec.buf.Bytes(),
			})
			if err == nil {
				_ = rdb.Set(ctx, cacheKey, payload, ttl).Err()
			}
		}
		_ = rdb.Del(ctx, lockKey).Err()
	}
}
