package middleware

import (
	"github.com/Rajnish-J/todo-fast-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Audit records authenticated requests after they complete. The
// request id is echoed in the X-Request-ID response header so log
// rows can be matched to client reports.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		// only record requests with a resolved identity
		identity, ok := CurrentIdentity(c)
		if !ok {
			return
		}

		entry := models.AuditLog{
			RequestID: requestID,
			UserID:    identity.UserID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
