package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics,
// logs the stack trace, and answers with the uniform error envelope.
//
// Behavior:
//   - Uses defer to catch any panic raised during request handling.
//   - Logs the recovered value and stack trace through the structured logger.
//   - Returns a 500 Internal Server Error in the dto.ErrorResponse shape, so
//     even an unhandled fault keeps the API contract.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
			}
		}()

		c.Next()
	}
}
