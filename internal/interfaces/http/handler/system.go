package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/beerworks/backend/internal/infrastructure/persistence"
	"github.com/beerworks/backend/internal/interfaces/http/dto"
)

// DatabaseHealth reports database liveness and pool statistics
type DatabaseHealth interface {
	Ping() error
	Stats() (persistence.ConnectionStats, error)
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	db        DatabaseHealth
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. db may be nil, in which case
// health reports only process liveness.
func NewSystemHandler(db DatabaseHealth) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string          `json:"status"`
	Database *DatabaseStatus `json:"database,omitempty"`
}

// DatabaseStatus represents database health details
type DatabaseStatus struct {
	Status          string `json:"status"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Beer Backend API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}
	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// Health reports service and database health. A failing database ping yields
// 503 so load balancers stop routing traffic here.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "up"}

	if h.db != nil {
		dbStatus := &DatabaseStatus{Status: "up"}
		if err := h.db.Ping(); err != nil {
			dbStatus.Status = "down"
			resp.Status = "down"
		} else if stats, err := h.db.Stats(); err == nil {
			dbStatus.OpenConnections = stats.OpenConnections
			dbStatus.InUse = stats.InUse
			dbStatus.Idle = stats.Idle
		}
		resp.Database = dbStatus
	}

	status := http.StatusOK
	if resp.Status != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, dto.NewSuccessResponse(resp))
}

// Ping is a minimal liveness endpoint
func (h *SystemHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"message":   "pong",
		"timestamp": time.Now().Format(time.RFC3339),
	}))
}

// RegisterRoutes registers all system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/info", h.GetSystemInfo)
		system.GET("/health", h.Health)
		system.GET("/ping", h.Ping)
	}
}
