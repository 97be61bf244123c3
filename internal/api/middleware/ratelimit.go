package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/feral-file/ff-dao/internal/api/shared/errors"
	"github.com/feral-file/ff-dao/internal/logger"
	"github.com/feral-file/ff-dao/internal/ratelimit"
)

// RateLimit limits requests per authenticated subject, or per client IP before authentication.
// A limiter failure lets the request through.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := Actor(c)
		if subject == "" {
			subject = "ip:" + c.ClientIP()
		}

		decision, err := limiter.Allow(c.Request.Context(), subject)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), err, zap.String("subject", subject))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": apierrors.NewRateLimitedError()})
			return
		}
		c.Next()
	}
}
