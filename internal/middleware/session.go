// Package middleware provides session identification middleware.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/cart-service/internal/domain/dto"
	"github.com/lulukitchen/cart-service/internal/i18n"
)

const (
	// SessionIDHeader is the HTTP header carrying the customer session ID.
	SessionIDHeader = "X-Session-ID"
	// SessionIDKey is the gin context key the session ID is stored under.
	SessionIDKey = "session_id"
)

// RequireSession returns a middleware that extracts the X-Session-ID
// header and stores it in the context. Requests without the header are
// rejected with 400; carts are keyed by this ID and there is no
// server-side session creation.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader(SessionIDHeader))
		if sessionID == "" {
			locale := i18n.GetLocale(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeySessionRequired, locale)
			errorResp := dto.NewError(dto.ErrCodeInvalidRequest, message).
				WithRequestID(GetRequestID(c))
			c.AbortWithStatusJSON(http.StatusBadRequest, errorResp)
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session ID stored by RequireSession, or an
// empty string when the middleware did not run.
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			return id
		}
	}
	return ""
}
