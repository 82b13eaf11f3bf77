package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
)

func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rvr := recover(); rvr != nil {
				log.Error("panic recovered",
					slog.String("request_id", c.GetString(ContextRequestID)),
					slog.Any("panic", rvr),
					slog.String("stack", string(debug.Stack())),
				)

				httperr.InternalServer(c)
				c.Abort()
			}
		}()

		c.Next()
	}
}
