package httperr

import (
	"log/slog"
	"net/http"

	"skill-swap-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errs.Is(err, errs.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errs.Is(err, errs.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the mapped status. Internal errors never leak their text.
func Abort(c *gin.Context, err error, detail any) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("internal error", "path", c.FullPath(), "error", err, "stack", errs.ExtractStackLines(err, 12))
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detail)
}
