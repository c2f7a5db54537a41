// Package middleware — logger.go логирует HTTP-запросы и пишет метрики.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"reliefmap/internal/metrics"
)

// RequestLogger логирует каждый запрос и инкрементирует счётчики Prometheus.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unknown" // запрос мимо роутера
		}

		metrics.RequestsTotal.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(status),
		).Inc()
		metrics.RequestDurationSeconds.Observe(elapsed.Seconds())

		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  status,
			"elapsed": elapsed.String(),
			"client":  c.ClientIP(),
		})
		if status >= 500 {
			entry.Error("HTTP-запрос завершился ошибкой")
		} else {
			entry.Debug("HTTP-запрос обработан")
		}
	}
}
