package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/proclubshub/backend/pkg/response"
)

type HealthHandler struct {
	Pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{Pool: pool}
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if h.Pool != nil {
		if err := h.Pool.Ping(ctx); err != nil {
			response.Error[any](c, http.StatusInternalServerError, "database unreachable", err.Error())
			return
		}
	}
	response.Success[any](c, http.StatusOK, gin.H{"ok": true}, "healthy", nil)
}
