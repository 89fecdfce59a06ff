package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Cloning ---
	cloneGroup := router.Group("/clone")
	{
		cloneGroup.POST("", h.CloneWebsite) // Clone a website from a URL
	}

	// --- Service Info ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "AI Website Cloner API",
			"endpoints": gin.H{
				"clone":  "POST /clone",
				"health": "GET /health",
			},
		})
	})

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
