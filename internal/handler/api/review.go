package api

import (
	"net/http"

	reqdto "skill-swap-core/internal/handler/dto/request"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.SkillQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.SkillQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Submit review
// @Description Append feedback to a skill and fold the rating into its average
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param request body reqdto.SubmitReviewRequest true "Review"
// @Success 201 {object} resdto.SubmitReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /skills/{id}/reviews [post]
func (h *ReviewHandler) Submit(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	skillID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), sc, req.ToInput(skillID))
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitReviewResult(result))
}

// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param id path int true "Skill ID"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.FeedbackPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /skills/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	skillID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	var cursor *queries.Cursor
	if page.Cursor != "" {
		cursor = &queries.Cursor{After: page.Cursor}
	}
	items, next, err := h.q.ListFeedback(c.Request.Context(), skillID, cursor, page.Limit)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeedbackPage(items, next))
}
