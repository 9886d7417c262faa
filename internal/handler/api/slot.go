package api

import (
	"net/http"
	"strconv"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	q queries.SlotQueries
}

func NewSlotHandler(q queries.SlotQueries) *SlotHandler {
	return &SlotHandler{q: q}
}

// @Summary Check slot availability
// @Tags slots
// @Produce json
// @Param id path int true "Slot ID"
// @Param participants query int false "Participants (default 1)"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/slots/{id}/availability [get]
func (h *SlotHandler) Availability(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid slot ID", "")
		return
	}
	participants, err := strconv.Atoi(c.DefaultQuery("participants", "1"))
	if err != nil || participants < 1 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid participants parameter", "At least 1 participant is required")
		return
	}

	a, err := h.q.Availability(c.Request.Context(), id, participants)
	if err != nil {
		if errs.Is(err, queries.ErrSlotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", "")
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromSlotAvailability(a)))
}
