package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/data"
	"github.com/Zachkp/folio/internal/store"
	"github.com/Zachkp/folio/internal/util"
)

// ListProjects handles GET /api/projects
func (h *Handler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": data.Projects()})
}

// GetProject handles GET /api/projects/:slug
func (h *Handler) GetProject(c *gin.Context) {
	p, err := data.ProjectBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"project":    p,
		"tech_stack": util.GetTechStackDisplay(p.TechStack, util.DefaultMaxVisible),
	})
}

type metricRequest struct {
	Name   string   `json:"name" binding:"required"`
	Value  *float64 `json:"value" binding:"required"`
	Rating string   `json:"rating"`
	Path   string   `json:"path"`
}

// RecordMetric handles POST /api/metrics. Outside production the endpoint
// accepts and discards everything.
func (h *Handler) RecordMetric(c *gin.Context) {
	if !h.cfg.IsProduction() || h.store == nil {
		c.Status(http.StatusNoContent)
		return
	}
	var req metricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid metric payload")
		return
	}
	m, err := h.store.RecordMetric(c.Request.Context(), store.Metric{
		Name:   req.Name,
		Value:  *req.Value,
		Rating: req.Rating,
		Path:   req.Path,
	})
	switch {
	case errors.Is(err, store.ErrInvalidMetric):
		respondError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.logger.Error("record metric", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to record metric")
		return
	}
	h.logger.Debug("web vital", zap.String("name", m.Name), zap.Float64("value", m.Value), zap.String("path", m.Path))
	c.JSON(http.StatusAccepted, gin.H{"id": m.ID})
}

// Health reports liveness and database reachability.
func (h *Handler) Health(c *gin.Context) {
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "message": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": h.site.Name})
}

// AdminStats handles GET /admin/api/stats
func (h *Handler) AdminStats(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	stats, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("load admin stats", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminCleanup handles POST /admin/api/cleanup, removing visits past retention.
func (h *Handler) AdminCleanup(c *gin.Context) {
	if h.store == nil {
		respondError(c, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	n, err := h.store.Cleanup(c.Request.Context(), store.Retention)
	if err != nil {
		h.logger.Error("privacy cleanup", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "cleanup failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
