package middleware

import (
	"gelato-pos/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuditMiddleware appends one audit row per authenticated request after the
// handler has run. Audit failures never fail the request.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user := c.GetString("currentUser")
		if user == "" {
			return
		}

		entry := models.AuditLog{
			User:      user,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			Status:    c.Writer.Status(),
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
