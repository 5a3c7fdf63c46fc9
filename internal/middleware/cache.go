package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Per-request response metadata. Handlers add entries while serving and the
// envelope serialises the map into its meta block.
const (
	metaContextKey  = "response_meta"
	metaKeyCacheHit = "cache_hit"
	metaKeyElapsed  = "processing_time_ms"
)

// WithResponseMeta seeds an empty metadata map for the request and stamps
// the total handling time once the chain completes, unless a handler
// already recorded a tighter figure.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(metaContextKey, map[string]interface{}{})
		start := time.Now()
		c.Next()
		meta := metaFor(c)
		if _, recorded := meta[metaKeyElapsed]; !recorded {
			meta[metaKeyElapsed] = time.Since(start).Milliseconds()
		}
	}
}

// SetCacheHit records whether the response payload was served from cache.
func SetCacheHit(c *gin.Context, hit bool) {
	metaFor(c)[metaKeyCacheHit] = hit
}

// ExtractMeta returns the request's metadata map, nil when none was seeded.
func ExtractMeta(c *gin.Context) map[string]interface{} {
	if c == nil {
		return nil
	}
	if v, ok := c.Get(metaContextKey); ok {
		if meta, ok := v.(map[string]interface{}); ok {
			return meta
		}
	}
	return nil
}

// metaFor returns the seeded map, creating one when a handler runs without
// the middleware (direct handler invocation in tests).
func metaFor(c *gin.Context) map[string]interface{} {
	if meta := ExtractMeta(c); meta != nil {
		return meta
	}
	meta := map[string]interface{}{}
	if c != nil {
		c.Set(metaContextKey, meta)
	}
	return meta
}
