package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	startedAt time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "BookIt API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// @Summary API index
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Welcome to BookIt API",
		"endpoints": gin.H{
			"experiences":       "/api/experiences",
			"experienceDetails": "/api/experiences/:id",
			"categories":        "/api/experiences/categories",
			"search":            "/api/experiences/search?q=term",
			"bookings":          "/api/bookings",
			"promo":             "/api/promo/validate",
			"activePromos":      "/api/promo/active",
		},
	})
}

func (h *HealthHandler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"error":   "Route not found",
		"message": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
	})
}
