package middleware

import (
	"elearn_backend/internal/util"
	"elearn_backend/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery กัน panic ใน handler: รายงานเข้า Sentry (ถ้าตั้ง DSN ไว้)
// แล้วตอบ 500 ด้วยข้อความกลาง ๆ
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				hub := sentry.CurrentHub().Clone()
				hub.Recover(r)

				logger.Log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)

				util.InternalServerError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}
