package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"site_clone_server/internal/pipeline"
)

// Cloner runs a full clone for one request. Satisfied by pipeline.Pipeline.
type Cloner interface {
	Clone(ctx context.Context, req pipeline.Request) (pipeline.Result, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	cloner Cloner
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(cloner Cloner) *APIHandler {
	return &APIHandler{cloner: cloner}
}

// --- Structs for API Requests/Responses ---

type CloneRequest struct {
	URL       string           `json:"url" binding:"required,url"`
	Framework string           `json:"framework"`
	Options   pipeline.Options `json:"options"`
}

// --- API Handlers ---

// POST /clone
func (h *APIHandler) CloneWebsite(c *gin.Context) {
	var req CloneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Framework == "" {
		req.Framework = "react"
	}

	log.Printf("Received clone request: url=%s framework=%s", req.URL, req.Framework)

	result, err := h.cloner.Clone(c.Request.Context(), pipeline.Request{
		URL:       req.URL,
		Framework: req.Framework,
		Options:   req.Options,
	})
	if err != nil {
		var verr *pipeline.ValidationError
		if errors.As(err, &verr) {
			log.Printf("Clone rejected for %s: %v", req.URL, verr)
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "issues": verr.Issues})
			return
		}
		log.Printf("Error cloning %s: %v", req.URL, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clone website: " + err.Error()})
		return
	}

	log.Printf("Clone successful for %s in %.2fs", req.URL, result.GenerationTime)
	c.JSON(http.StatusOK, result)
}
