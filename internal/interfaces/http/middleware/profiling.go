package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/meatkonnex/backend/internal/infrastructure/telemetry"
)

// Profiling label names attached to every sampled request
const (
	ProfilingLabelRoute    = "route"
	ProfilingLabelMethod   = "method"
	ProfilingLabelResource = "resource"
)

// Profiling tags CPU samples taken while serving a request with its route,
// method and top-level resource. Paths in skipPaths are left untagged.
func Profiling(enabled bool, skipPaths ...string) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		telemetry.WithProfilingLabels(c.Request.Context(), profilingLabels(c), func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func profilingLabels(c *gin.Context) map[string]string {
	labels := map[string]string{ProfilingLabelMethod: c.Request.Method}

	route := c.FullPath()
	if route == "" {
		return labels
	}
	labels[ProfilingLabelRoute] = route
	if resource := resourceFromRoute(route); resource != "" {
		labels[ProfilingLabelResource] = resource
	}
	return labels
}

// resourceFromRoute returns the first literal path segment,
// e.g. "/admin/orders/:id/payment-status" -> "admin"
func resourceFromRoute(route string) string {
	for _, part := range strings.Split(route, "/") {
		if part == "" || strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		return part
	}
	return ""
}
