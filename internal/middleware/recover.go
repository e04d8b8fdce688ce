package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"wxpay-errcode-api/internal/constant"
	"wxpay-errcode-api/internal/utils"
)

// Recover 需注册在 RequestLogger 之后，panic 的请求才会有访问日志
func Recover(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(logrus.Fields{
					"path":     c.Request.URL.Path,
					"trace_id": GetTraceID(c),
					"panic":    r,
				}).Errorf("panic recovered\n%s", debug.Stack())
				_ = c.Error(fmt.Errorf("panic: %v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					utils.Error(constant.CodeSystemError).WithTrace(GetTraceID(c)))
			}
		}()
		c.Next()
	}
}
