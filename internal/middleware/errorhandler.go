package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cryptopulse/internal/domain/dto"
	"github.com/guttosm/cryptopulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors collected on the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If handlers attached errors and no response was written yet,
//     responds 500 with the last error's message.
//
// Handlers that map errors to specific statuses themselves (the normal
// path) are unaffected; this is the fallback for unmapped errors.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	logger.L().Error().Err(last).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", last))
}

// AbortWithError writes a standardized JSON error response and aborts the
// remaining handler chain.
//
// Parameters:
//   - c (*gin.Context): Request context.
//   - status (int): HTTP status code to respond with.
//   - message (string): Human-readable error description.
//   - err (error): Underlying cause; may be nil.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
