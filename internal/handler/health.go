package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// HealthHandler serves liveness and version endpoints
type HealthHandler struct {
	info BuildInfo
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(info BuildInfo) *HealthHandler {
	return &HealthHandler{info: info}
}

// Home handles GET /
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "AI service running"})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"service":    "ai-service",
		"version":    h.info.Version,
		"build_time": h.info.BuildTime,
		"git_commit": h.info.GitCommit,
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version":    h.info.Version,
		"build_time": h.info.BuildTime,
		"git_commit": h.info.GitCommit,
	})
}

// NotFound answers unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "endpoint not found"})
}
