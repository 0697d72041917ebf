package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that turns errors attached to the context
// via c.Error into a 500 with the uniform error envelope, unless a handler
// already wrote a response.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
}

// AbortWithError logs the underlying error and aborts the request with the
// uniform error envelope carrying the given message.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Error().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}
