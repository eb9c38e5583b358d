package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type HealthController struct {
	store  repositories.TripStore
	logger *zap.Logger
}

func NewHealthController(store repositories.TripStore, logger *zap.Logger) *HealthController {
	return &HealthController{store: store, logger: logger}
}

// Health godoc
// @Summary Service and store health
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.HealthResponse
// @Failure 503 {object} response_models.HealthResponse
// @Router /health [get]
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := response_models.HealthResponse{
		Status:    "healthy",
		Store:     "up",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := hc.store.Ping(ctx); err != nil {
		hc.logger.Warn("store ping failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Store = "down"
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			TraceID: c.GetString("trace_id"),
			Data:    resp,
		})
		return
	}
	utils.RespondSuccess(c, resp, "OK")
}
