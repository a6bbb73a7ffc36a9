package gateway

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionID = "session_id"
	ctxAdmin     = "admin"
)

func (h *Handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			h.Log.WarnContext(c.Request.Context(), "http request", attrs...)
			return
		}
		h.Log.DebugContext(c.Request.Context(), "http request", attrs...)
	}
}

func (h *Handler) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.Metrics == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		h.Metrics.Requests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		h.Metrics.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
	}
}

// cors allows the configured storefront origin to call the API with cookies.
func (h *Handler) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && h.AllowedOrigin != "" && (h.AllowedOrigin == "*" || origin == h.AllowedOrigin) {
			hdr := c.Writer.Header()
			hdr.Set("Access-Control-Allow-Origin", origin)
			hdr.Set("Access-Control-Allow-Credentials", "true")
			hdr.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			hdr.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Idempotency-Key")
			hdr.Add("Vary", "Origin")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// cartSession ties the request to a cart session, issuing a cookie on first
// contact.
func (h *Handler) cartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cartCookie)
		if err != nil || uuid.Validate(sid) != nil {
			sid = uuid.NewString()
			h.setCookie(c, cartCookie, sid, int(h.SessionTTL.Seconds()))
		}
		c.Set(ctxSessionID, sid)
		c.Next()
	}
}

func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := h.Auth.Check(c.Request.Context(), adminToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHENTICATED"})
			return
		}
		c.Set(ctxAdmin, id)
		c.Next()
	}
}

func adminToken(c *gin.Context) string {
	if v, err := c.Cookie(adminCookie); err == nil && v != "" {
		return v
	}
	if v, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func (h *Handler) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.CookieSecure, true)
}
