package handler

import (
	"time"

	"tour-insight/app/database"
	"tour-insight/app/errs"
	"tour-insight/app/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler 健康检查
type HealthHandler struct {
	base
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{base: base{logger: log}, db: db}
}

// CheckHealth 检查数据库连接
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	start := time.Now()
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		h.error(c, errs.Storage(err))
		return
	}
	h.success(c, gin.H{
		"status":  "ok",
		"latency": time.Since(start).String(),
	}, "")
}
