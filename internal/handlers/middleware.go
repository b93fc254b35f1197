package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing a well-formed incoming one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequestLogger logs each request once it has been handled.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("request_id", c.GetString("request_id")),
		)
	}
}

var untrackedPrefixes = []string{"/static/", "/images/", "/admin/", "/api/", "/favicon", "/privacy", "/health", "/site.css"}

// VisitorTracking records page views with hashed IPs. Assets, admin and API
// calls are skipped, and so is any request carrying DNT: 1.
func VisitorTracking(s Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if s == nil || c.Request.Method != http.MethodGet || c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		s.TrackVisit(c.ClientIP(), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

// AdminAuth requires "Authorization: Bearer <token>".
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}
