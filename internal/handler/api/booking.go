package api

import (
	"net/http"

	reqdto "skill-swap-core/internal/handler/dto/request"
	resdto "skill-swap-core/internal/handler/dto/response"
	"skill-swap-core/internal/handler/httperr"
	"skill-swap-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
}

func NewBookingHandler(cmds commands.BookingCommands) *BookingHandler {
	return &BookingHandler{cmds: cmds}
}

// @Summary Book session
// @Description Pay for a slot of the skill and commit the session. Failed attempts
// @Description carry the terminal attempt in the error detail.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Skill ID"
// @Param Idempotency-Key header string false "Idempotency key for duplicate prevention"
// @Param request body reqdto.BookSessionRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "replayed outcome"
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /skills/{id}/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	sc, ok := sessionContext(c)
	if !ok {
		return
	}
	skillID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	key, err := idempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}
	var req reqdto.BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.Abort(c, err, nil)
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), sc, req.ToInput(skillID, key))
	if err != nil {
		var detail any
		if result != nil {
			detail = resdto.FromBookingResult(result)
		}
		httperr.Abort(c, err, detail)
		return
	}
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingResult(result))
}

// idempotencyKey is optional; an absent header yields uuid.Nil.
func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
