package api

import (
	"net/http"

	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/pkg/errs"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	completion commands.CompletionCommands
	cancel     commands.CancelCommands
	q          queries.SessionQueries
}

func NewSessionHandler(completion commands.CompletionCommands, cancel commands.CancelCommands, q queries.SessionQueries) *SessionHandler {
	return &SessionHandler{completion: completion, cancel: cancel, q: q}
}

// @Summary List my sessions
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SessionResponse
// @Router /sessions [get]
func (h *SessionHandler) ListMine(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), sc)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionViews(views))
}

// @Summary Get session
// @Description Visible to the student and the teacher only
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), sc, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSessionView(view))
}

// @Summary Complete session
// @Description Teacher marks the session complete; the student receives one award.
// @Description 202 means the session is complete and the award is still pending.
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} resdto.CompletionResponse
// @Success 202 {object} resdto.CompletionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/{id}/complete [post]
func (h *SessionHandler) Complete(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	result, err := h.completion.Complete(c.Request.Context(), sc, id)
	if err != nil {
		if result != nil && errs.Is(err, errs.ErrAwardPending) {
			_ = c.Error(err)
			c.JSON(http.StatusAccepted, resdto.FromCompletionResult(result))
			return
		}
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletionResult(result))
}

// @Summary Cancel session
// @Description Student cancels an uncompleted session; a refund is owed and the slot stays booked
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Success 200 {object} resdto.CancelResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /sessions/{id}/cancel [post]
func (h *SessionHandler) Cancel(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	result, err := h.cancel.CancelSession(c.Request.Context(), sc, id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}
