package main

import (
	"net/http"
	"time"

	"codeberg.org/algorave/viewkit/internal/logger"
	"codeberg.org/algorave/viewkit/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const requestIDHeader = "X-Request-ID"

// allows browser clients from any origin to call the API
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}

// tags every request with an id, reusing a valid incoming one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set("request_id", id)
		c.Header(requestIDHeader, id)

		ctx := logger.WithContext(c.Request.Context(), logger.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// limits requests per client IP, rate uses the "<limit>-<period>" format (e.g. "100-M")
func RateLimitMiddleware(f *view.Factory, rate string) (gin.HandlerFunc, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, err
	}

	instance := limiter.New(memory.NewStore(), r)

	return mgin.NewMiddleware(instance,
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			f.AbortWith(c, "Too Many Requests", "Rate limit exceeded, try again later.", http.StatusTooManyRequests)
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			logger.ErrorErr(err, "rate limiter failed", "path", c.Request.URL.Path)
			f.AbortWith(c, "Server Error", "Please contact developer.", http.StatusInternalServerError)
		}),
	), nil
}
