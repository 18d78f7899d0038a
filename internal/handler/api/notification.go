package api

import (
	"net/http"

	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	q queries.NotificationQueries
}

func NewNotificationHandler(q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{q: q}
}

// @Summary List my notifications
// @Description Most recent lifecycle notifications addressed to the caller
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListMine(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), sc)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}
