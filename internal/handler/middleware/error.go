package middleware

import (
	"log/slog"
	"net/http"

	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that handlers recorded without writing a body.
// Public errors carry their httperr.Response as Meta; anything else is an
// internal error and only its log line says what happened.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		slog.Error("unhandled request error",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"error", last.Err,
			"stack", errs.ExtractStackLines(last.Err, 8),
		)
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic", "request_id", GetRequestID(c), "error", rec, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
