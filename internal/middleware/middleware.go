// Package middleware holds Gin middleware for the HTTP server: anonymous
// session resolution, CORS, and request-performance logging. The server
// wires CORS and performance logging into every route; session resolution
// is not wired in by cmd/server.
package middleware

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crossplay/wordquest/internal/auth"
	"github.com/crossplay/wordquest/internal/models"
)

const SessionKey = "session"

// SessionMiddleware resolves the anonymous session token on a request.
type SessionMiddleware struct {
	sessions *auth.SessionService
}

func NewSessionMiddleware(sessions *auth.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions}
}

// RequireSession rejects requests without a valid session token.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			c.Abort()
			return
		}

		claims, err := m.sessions.ValidateSession(token)
		if err != nil {
			if err == auth.ErrTokenExpired {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			}
			c.Abort()
			return
		}

		c.Set(SessionKey, claims)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

// GetSession retrieves the resolved session claims from the context.
func GetSession(c *gin.Context) *models.SessionClaims {
	claims, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	return claims.(*models.SessionClaims)
}

// CORS allows cross-origin requests from the game's frontend.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// PerformanceMetrics holds aggregate and per-endpoint request timing.
type PerformanceMetrics struct {
	mu              sync.RWMutex
	requestCount    int64
	totalDuration   time.Duration
	endpointMetrics map[string]*EndpointMetrics
}

// EndpointMetrics holds timing stats for a single route.
type EndpointMetrics struct {
	Count       int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
	P95Time     time.Duration
	recentTimes []time.Duration
}

var globalMetrics = &PerformanceMetrics{endpointMetrics: make(map[string]*EndpointMetrics)}

// PerformanceMonitor logs slow requests and records timing metrics.
func PerformanceMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start)

		if path != "/health" {
			const slowThreshold = 200 * time.Millisecond
			if duration > slowThreshold {
				log.Printf("[SLOW] %s %s - %v (status: %d)", c.Request.Method, path, duration, c.Writer.Status())
			}
			globalMetrics.recordRequest(path, duration)
		}

		c.Header("X-Response-Time", duration.String())
	}
}

func (pm *PerformanceMetrics) recordRequest(path string, duration time.Duration) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.requestCount++
	pm.totalDuration += duration

	metrics, exists := pm.endpointMetrics[path]
	if !exists {
		metrics = &EndpointMetrics{MinTime: duration, MaxTime: duration, recentTimes: make([]time.Duration, 0, 100)}
		pm.endpointMetrics[path] = metrics
	}

	metrics.Count++
	metrics.TotalTime += duration
	if duration < metrics.MinTime {
		metrics.MinTime = duration
	}
	if duration > metrics.MaxTime {
		metrics.MaxTime = duration
	}

	metrics.recentTimes = append(metrics.recentTimes, duration)
	if len(metrics.recentTimes) > 100 {
		metrics.recentTimes = metrics.recentTimes[1:]
	}

	sorted := make([]time.Duration, len(metrics.recentTimes))
	copy(sorted, metrics.recentTimes)
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i] > sorted[j] {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}
	p95Index := int(float64(len(sorted)) * 0.95)
	if p95Index >= len(sorted) {
		p95Index = len(sorted) - 1
	}
	metrics.P95Time = sorted[p95Index]
}

// GetMetrics returns a snapshot of current performance metrics for the
// admin metrics endpoint.
func GetMetrics() map[string]interface{} {
	globalMetrics.mu.RLock()
	defer globalMetrics.mu.RUnlock()

	endpoints := make(map[string]interface{})
	for path, metrics := range globalMetrics.endpointMetrics {
		avgTime := time.Duration(0)
		if metrics.Count > 0 {
			avgTime = metrics.TotalTime / time.Duration(metrics.Count)
		}
		endpoints[path] = map[string]interface{}{
			"count":  metrics.Count,
			"avg_ms": avgTime.Milliseconds(),
			"min_ms": metrics.MinTime.Milliseconds(),
			"max_ms": metrics.MaxTime.Milliseconds(),
			"p95_ms": metrics.P95Time.Milliseconds(),
		}
	}

	avgDuration := time.Duration(0)
	if globalMetrics.requestCount > 0 {
		avgDuration = globalMetrics.totalDuration / time.Duration(globalMetrics.requestCount)
	}

	return map[string]interface{}{
		"total_requests":  globalMetrics.requestCount,
		"avg_duration_ms": avgDuration.Milliseconds(),
		"endpoints":       endpoints,
	}
}
