package handler

import (
	"net/http"
	"strconv"

	"gelato-pos/internal/models"
	"gelato-pos/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler lists the audit trail.
type LogHandler struct {
	DB *gorm.DB
}

func NewLogHandler(db *gorm.DB) *LogHandler {
	return &LogHandler{DB: db}
}

func (h *LogHandler) ListLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao consultar registros")
		return
	}

	var logs []models.AuditLog
	if err := h.DB.
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&logs).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Falha ao consultar registros")
		return
	}

	items := make([]gin.H, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		items = append(items, gin.H{
			"id":         l.ID,
			"user":       l.User,
			"method":     l.Method,
			"path":       l.Path,
			"status":     l.Status,
			"ip":         l.IP,
			"created_at": l.CreatedAt,
		})
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}
