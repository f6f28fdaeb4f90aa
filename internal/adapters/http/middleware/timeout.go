package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/event-quote-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
)

// SimpleTimeout puts a deadline on the request context. Handlers are not
// interrupted; store calls observe the deadline and fail. When the deadline
// passed and the handler wrote nothing, a 504 TIMEOUT response is sent.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		logging.FromContext(ctx).WarnContext(ctx, "request timeout",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("timeout", timeout),
		)

		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewErrorResponse(dto.ErrorCodeTimeout, "request timeout exceeded").WithTraceID(dto.GetTraceID(c)))
	}
}
