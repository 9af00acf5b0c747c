package handler

import (
	"context"
	"time"

	"dsa-catalog/internal/dto"
	"dsa-catalog/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDisabled = "disabled"

	healthCheckTimeout = 2 * time.Second
)

// Pinger is anything the health check can probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus store and cache reachability
type HealthHandler struct {
	store Pinger
	cache Pinger
}

// NewHealthHandler creates a HealthHandler. cache may be nil when caching is off.
func NewHealthHandler(store Pinger, cache Pinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

// Health godoc
// @Summary Health check
// @Description Pings the topic store and the cache; responds 503 when the store is unreachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	var storeErr, cacheErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		storeErr = h.store.Ping(gctx)
		return nil
	})
	if h.cache != nil {
		g.Go(func() error {
			cacheErr = h.cache.Ping(gctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := dto.HealthResponse{Status: statusOK, Checks: map[string]string{"store": statusOK, "cache": statusDisabled}}
	if h.cache != nil {
		resp.Checks["cache"] = statusOK
	}

	status := fiber.StatusOK
	if storeErr != nil {
		logger.Get().Error("Health check: store unreachable", zap.Error(storeErr))
		resp.Checks["store"] = storeErr.Error()
		resp.Status = statusDegraded
		status = fiber.StatusServiceUnavailable
	}
	if cacheErr != nil {
		// Reads fall back to the store, so a cache outage alone keeps 200.
		logger.Get().Warn("Health check: cache unreachable", zap.Error(cacheErr))
		resp.Checks["cache"] = cacheErr.Error()
		resp.Status = statusDegraded
	}

	return c.Status(status).JSON(resp)
}
