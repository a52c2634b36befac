package middleware

import (
	"wager-escrow-service/internal/core/ports"
	"wager-escrow-service/pkg/apperror"
	"wager-escrow-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimit throttles an endpoint group per client IP using the
// sliding-window limiter. Rejected requests do not consume window
// capacity, so a throttled caller recovers as soon as the window
// slides past its earlier requests.
func RateLimit(limiter ports.RateLimiter, group string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := group + ":" + c.ClientIP()

		if limiter.IsRateLimited(key) {
			log.Warn().
				Str("group", group).
				Str("client_ip", c.ClientIP()).
				Msg("rate limit exceeded")
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
