package routes

import (
	"net/http"
	"time"

	"cobranca_campo/internal/adapter/http/handlers"
	"cobranca_campo/internal/domain/entities"
	"cobranca_campo/internal/usecase"
	"cobranca_campo/pkg"

	"github.com/gin-gonic/gin"
)

// Identity arrives from the auth proxy in front of this service as plain
// headers; the engine itself never verifies tokens.
const (
	headerUserID   = "X-User-Id"
	headerTenantID = "X-Tenant-Id"
	headerUserRole = "X-User-Role"
	headerBranch   = "X-User-Branch"
)

const (
	publicRateLimit  = 5
	publicRateWindow = 60 * time.Second
)

func principalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(headerTenantID)
		userID := c.GetHeader(headerUserID)
		if tenantID == "" || userID == "" {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(handlers.PrincipalKey, entities.Principal{
			UserID:   userID,
			TenantID: tenantID,
			Role:     entities.UserRole(c.GetHeader(headerUserRole)),
			Branch:   c.GetHeader(headerBranch),
		})
		c.Next()
	}
}

// rateLimitMiddleware guards the public payer-facing endpoints, keyed by
// client IP. The limiter fails open, so a store outage slows nobody down.
func rateLimitMiddleware(limiter usecase.IRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP(), publicRateLimit, publicRateWindow)
		if !res.Allowed {
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Too many requests, try again later", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
