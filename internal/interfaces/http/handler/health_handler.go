package handler

import (
	"context"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/Naveen2070/Hive-Movie/internal/config"
	"github.com/Naveen2070/Hive-Movie/internal/pkg/concurrent"

	"github.com/gin-gonic/gin"
)

// HealthChecker is a dependency whose reachability gates readiness.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler serves liveness/readiness/info endpoints.
type HealthHandler struct {
	cfg       *config.Config
	storage   HealthChecker
	broker    HealthChecker
	startTime time.Time
}

// NewHealthHandler creates a new health handler. broker may be nil in
// contexts that don't dial the message broker.
func NewHealthHandler(cfg *config.Config, storage HealthChecker, broker HealthChecker) *HealthHandler {
	return &HealthHandler{cfg: cfg, storage: storage, broker: broker, startTime: time.Now()}
}

// HealthResponse is the liveness/readiness response shape.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Environment string                 `json:"environment"`
	Uptime      string                 `json:"uptime"`
	Checks      map[string]CheckStatus `json:"checks,omitempty"`
}

// CheckStatus is one dependency's reachability.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		Uptime:      time.Since(h.startTime).String(),
	})
}

// HealthDetailed handles GET /health/ready. Storage and broker
// reachability are probed concurrently so one slow dependency doesn't
// double the endpoint's latency.
func (h *HealthHandler) HealthDetailed(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	checks := make(map[string]CheckStatus)

	probe := func(name string, checker HealthChecker) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			if checker == nil {
				return nil
			}
			err := checker.Health(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				checks[name] = CheckStatus{Status: "unhealthy", Message: err.Error()}
			} else {
				checks[name] = CheckStatus{Status: "healthy"}
			}
			return nil
		}
	}

	_ = concurrent.Parallel(ctx, probe("storage", h.storage), probe("broker", h.broker))

	overallStatus := "healthy"
	for _, check := range checks {
		if check.Status != "healthy" {
			overallStatus = "unhealthy"
			break
		}
	}

	resp := HealthResponse{
		Status:      overallStatus,
		Version:     h.cfg.App.Version,
		Environment: h.cfg.App.Environment,
		Uptime:      time.Since(h.startTime).String(),
		Checks:      checks,
	}

	status := http.StatusOK
	if overallStatus == "unhealthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// Info handles GET /info.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app": gin.H{
			"name":        h.cfg.App.Name,
			"version":     h.cfg.App.Version,
			"environment": h.cfg.App.Environment,
		},
		"runtime": gin.H{
			"go_version":    runtime.Version(),
			"num_cpu":       runtime.NumCPU(),
			"num_goroutine": runtime.NumGoroutine(),
		},
		"uptime": time.Since(h.startTime).String(),
	})
}
