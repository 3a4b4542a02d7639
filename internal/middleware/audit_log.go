// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lulukitchen/cart-service/internal/domain/model"
	"github.com/lulukitchen/cart-service/internal/service"
)

// AuditLog logs a cart or admin action for audit purposes.
// This should be used for critical actions like checkout, coupon changes, login, etc.
func AuditLog(loggingService service.LoggingService, c *gin.Context, actionType string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, "info", actionType, message, fields)

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// AuditLogError logs an error action for audit purposes.
func AuditLogError(loggingService service.LoggingService, c *gin.Context, actionType string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	entry := buildAuditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// buildAuditEntry assembles an audit entry from the request context,
// capturing the customer session and admin identity when present.
func buildAuditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	entry := &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}

	if sessionID, exists := c.Get(SessionIDKey); exists {
		if id, ok := sessionID.(string); ok {
			entry.SessionID = id
		}
	}
	if adminEmail, exists := c.Get("user_email"); exists {
		if email, ok := adminEmail.(string); ok {
			entry.AdminEmail = email
		}
	}

	return entry
}
