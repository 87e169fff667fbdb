package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appidentity "github.com/univendor/backend/internal/application/identity"
	"github.com/univendor/backend/internal/domain/identity"
	"github.com/univendor/backend/internal/infrastructure/config"
	"github.com/univendor/backend/internal/interfaces/http/dto"
)

// Session context keys
const (
	PrincipalKey = "session_principal"
	SessionIDKey = "session_id"
)

// Session resolves the session cookie into a principal and stores it in
// the request context. Requests without a cookie, or with a session that
// can no longer be resolved, continue anonymously; route guards decide
// whether that is acceptable.
func Session(auth *appidentity.AuthService, cfg *config.SessionConfig, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cfg.CookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		principal, err := auth.Resolve(c.Request.Context(), sessionID)
		if err != nil {
			if log != nil {
				log.Debug("session resolution failed",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
			}
			c.Next()
			return
		}

		c.Set(PrincipalKey, principal)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// RequireAuth aborts with 401 when no principal was resolved for the request
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c); !ok {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// RequireRoles aborts with 403 unless the effective user holds one of the
// given roles. It implies RequireAuth.
func RequireRoles(roles ...identity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}
		for _, role := range roles {
			if principal.User.Role == role {
				c.Next()
				return
			}
		}
		abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, "Insufficient permissions")
	}
}

// GetPrincipal returns the principal resolved for the request, if any
func GetPrincipal(c *gin.Context) (*appidentity.Principal, bool) {
	v, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*appidentity.Principal)
	return principal, ok && principal != nil
}

// GetSessionID returns the session identifier attached to the request
func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortWithError(c *gin.Context, status int, code, message string) {
	requestID := ""
	if v, exists := c.Get("request_id"); exists {
		if id, ok := v.(string); ok {
			requestID = id
		}
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponseWithRequestID(code, message, requestID))
}
