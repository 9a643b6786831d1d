package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipeprep/backend/internal/database"
)

// HealthHandler reports whether the backing stores answer
type HealthHandler struct {
	db     *gorm.DB
	redis  *redis.Client
	logger *zap.Logger
}

// NewHealthHandler creates the handler. redisClient may be nil.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, logger: logger}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "ok", "database": "ok", "redis": "disabled"}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		status = http.StatusServiceUnavailable
		body["status"] = "unavailable"
		body["database"] = "error"
	}
	if h.redis != nil {
		body["redis"] = "ok"
		if err := h.redis.Ping(ctx).Err(); err != nil {
			// the API still works without the cache
			h.logger.Warn("redis health check failed", zap.Error(err))
			body["redis"] = "error"
		}
	}
	c.JSON(status, body)
}
