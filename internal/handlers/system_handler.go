package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
)

const banner = "API PetShow funcionando!"

type SystemHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSystemHandler(db *gorm.DB, log *slog.Logger) *SystemHandler {
	return &SystemHandler{db: db, log: log}
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, banner)
}

func (h *SystemHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		httperr.Respond(c, h.log, httperr.Internal("health: sql.DB", err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		h.log.Error("health check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
