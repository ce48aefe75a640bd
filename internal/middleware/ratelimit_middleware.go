package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appredis "github.com/RedPanda-08/AI-Content-Generator-sub000/internal/redis"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/services"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/pkg/logger"
)

type limitCheck func(ctx context.Context, limiter *appredis.RateLimiter, ownerID string) (*appredis.RateLimitResult, error)

// GenerateRateLimit throttles the completion endpoint per owner.
func GenerateRateLimit(limiter *appredis.RateLimiter, l *logger.Logger) gin.HandlerFunc {
	return rateLimit(limiter, l, func(ctx context.Context, rl *appredis.RateLimiter, ownerID string) (*appredis.RateLimitResult, error) {
		return rl.AllowGenerate(ctx, ownerID)
	})
}

// CalendarRateLimit throttles calendar create/delete per owner.
func CalendarRateLimit(limiter *appredis.RateLimiter, l *logger.Logger) gin.HandlerFunc {
	return rateLimit(limiter, l, func(ctx context.Context, rl *appredis.RateLimiter, ownerID string) (*appredis.RateLimitResult, error) {
		return rl.AllowCalendarWrite(ctx, ownerID)
	})
}

func rateLimit(limiter *appredis.RateLimiter, l *logger.Logger, check limitCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		owner, ok := services.OwnerFromContext(c.Request.Context())
		if !ok {
			c.Next()
			return
		}

		result, err := check(c.Request.Context(), limiter, owner.ID.String())
		if err != nil {
			// Redis unavailable: fail open rather than block the product.
			if l != nil {
				l.Errorf("rate limit check failed: %s", err)
			}
			c.Next()
			return
		}
		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limited", "RATE_LIMITED"))
			c.Abort()
			return
		}
		c.Next()
	}
}
