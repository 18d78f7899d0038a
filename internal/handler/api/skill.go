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

type SkillHandler struct {
	cmds commands.SkillCommands
	q    queries.SkillQueries
}

func NewSkillHandler(cmds commands.SkillCommands, q queries.SkillQueries) *SkillHandler {
	return &SkillHandler{cmds: cmds, q: q}
}

// @Summary List skill
// @Description Publish a skill listing; the listing fee is paid first when configured
// @Tags skills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ListSkillRequest true "Skill listing"
// @Success 201 {object} resdto.ListSkillResponse
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	var req reqdto.ListSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	result, err := h.cmds.ListSkill(c.Request.Context(), sc, in)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListSkillResult(result))
}

// @Summary Browse skills
// @Tags skills
// @Produce json
// @Param owner query string false "Owner identity"
// @Param category query string false "Category"
// @Param level query string false "Level"
// @Param minRate query string false "Minimum rate"
// @Param maxRate query string false "Maximum rate"
// @Success 200 {array} resdto.SkillResponse
// @Failure 400 {object} httperr.Response
// @Router /skills [get]
func (h *SkillHandler) List(c *gin.Context) {
	var query reqdto.SkillListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSkillViews(views))
}

// @Summary Get skill
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} resdto.SkillResponse
// @Failure 404 {object} httperr.Response
// @Router /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSkillView(view))
}
