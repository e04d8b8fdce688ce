package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wxpay-errcode-api/internal/utils"
)

func RequestLogger(infoLog, errorLog logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         utils.GetRealClientIP(c),
			"latency":    latency.String(),
			"trace_id":   GetTraceID(c),
			"user-agent": c.Request.UserAgent(),
		}

		if len(c.Errors) > 0 {
			errorLog.WithFields(entry).Error(c.Errors.String())
		} else {
			infoLog.WithFields(entry).Info("request completed")
		}
	}
}
