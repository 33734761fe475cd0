package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"swea-cms.backend/pkg/logger"
	redisclient "swea-cms.backend/pkg/redis"
)

type cachingWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *cachingWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CachePage caches successful GET responses under a group so writes can
// evict them together. Cache faults fall through to the handler.
func CachePage(cache *redisclient.Cache, group string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if cached, ok := cache.Get(c.Request.Context(), group, key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		writer := &cachingWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if c.Writer.Status() == http.StatusOK {
			if err := cache.Set(c.Request.Context(), group, key, writer.body.String()); err != nil {
				logger.Warn(c.Request.Context(), "Failed to cache response",
					zap.String("group", group), zap.String("key", key), zap.Error(err))
			}
		}
	}
}

// InvalidateCache evicts the given cache groups after a successful write.
func InvalidateCache(cache *redisclient.Cache, groups ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			if err := cache.Invalidate(c.Request.Context(), groups...); err != nil {
				logger.Warn(c.Request.Context(), "Failed to invalidate cache", zap.Error(err))
			}
		}
	}
}
