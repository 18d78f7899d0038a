package api

import (
	"net/http"

	"skill-swap-core/internal/domain/identity"
	reqdto "skill-swap-core/internal/handler/dto/request"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/usecase/commands"
	"skill-swap-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds   commands.UserCommands
	q      queries.UserQueries
	format identity.Format
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries, format identity.Format) *UserHandler {
	return &UserHandler{cmds: cmds, q: q, format: format}
}

// @Summary Register user
// @Description Register the caller's wallet identity with a display name
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterUserRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	u, err := h.cmds.RegisterUser(c.Request.Context(), sc, req.Name)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUser(u))
}

// @Summary Get reputation
// @Description Reputation profile of a registered identity
// @Tags users
// @Produce json
// @Param identity path string true "Wallet identity"
// @Success 200 {object} resdto.ReputationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{identity}/reputation [get]
func (h *UserHandler) GetReputation(c *gin.Context) {
	id, err := h.format.Parse(c.Param("identity"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid identity", nil)
		return
	}
	view, err := h.q.GetReputation(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReputationView(view))
}
