package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

const rateLimitStorePrefix = "firm_books_limiter"

// NewLimiter builds an in-memory limiter from a rate string such as "100-M".
func NewLimiter(rate string) (*limiter.Limiter, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", rate, err)
	}
	store := memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitStorePrefix})
	return limiter.New(store, r), nil
}

// RateLimit limits requests per client IP. The limiter driver sets the
// X-RateLimit-* headers; exceeding the limit answers 429.
func RateLimit(lim *limiter.Limiter) gin.HandlerFunc {
	return mgin.NewMiddleware(lim,
		mgin.WithKeyGetter(func(c *gin.Context) string {
			return c.ClientIP()
		}),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Rate limit exceeded", slog.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please try again later."})
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			GetLoggerFromCtx(c.Request.Context()).Error("Rate limit check failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during rate limit check"})
		}),
	)
}
