package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/middleware"
)

type HealthHandler struct {
	ping   func(ctx context.Context) error
	logger *slog.Logger
}

func NewHealthHandler(ping func(ctx context.Context) error, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{ping: ping, logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) DBHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Error("db health failed", "request_id", middleware.GetRequestID(c), "err", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"db": "fail"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"db": "ok"})
}
