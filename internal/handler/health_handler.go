package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/TauhidOSD/yoga-master-server/internal/response"
	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Pinger reports whether a backing service is reachable.
type Pinger func(ctx context.Context) error

// HealthHandler reports process liveness and dependency reachability.
type HealthHandler struct {
	startTime time.Time
	store     Pinger
	cache     Pinger
}

// NewHealthHandler creates a new HealthHandler. A nil cache pinger reports
// the cache as disabled.
func NewHealthHandler(store, cache Pinger) *HealthHandler {
	return &HealthHandler{startTime: time.Now(), store: store, cache: cache}
}

// Root godoc
// GET /
func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Yoga Master Server is running!")
}

// Health godoc
// GET /health
// Returns 200 while the document store answers. Cache failures only degrade.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	body := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).Round(time.Second).String(),
		"store":  "up",
		"cache":  "disabled",
	}
	status := http.StatusOK

	if h.store != nil {
		if err := h.store(ctx); err != nil {
			body["status"], body["store"] = "unavailable", "down"
			status = http.StatusServiceUnavailable
		}
	}
	if h.cache != nil {
		body["cache"] = "up"
		if err := h.cache(ctx); err != nil {
			body["cache"] = "down"
			if status == http.StatusOK {
				body["status"] = "degraded"
			}
		}
	}

	response.Success(c, status, body)
}
