package api

import (
	"net/http"
	"strconv"

	"skill-swap-core/internal/domain/auth"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/handler/middleware"
	"skill-swap-core/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingSession = errs.New("session context missing on authenticated route")

// sessionContext must only be used behind RequireAuth.
func sessionContext(c *gin.Context) (auth.SessionContext, bool) {
	sc, ok := middleware.GetSessionContext(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingSession, "Internal server error", nil)
		return auth.SessionContext{}, false
	}
	return sc, true
}

func uintParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		if err == nil {
			err = errs.Newf("%s must be positive", name)
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
