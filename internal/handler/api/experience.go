package api

import (
	"fmt"
	"net/http"

	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/handler/httperr"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	q queries.ExperienceQueries
}

func NewExperienceHandler(q queries.ExperienceQueries) *ExperienceHandler {
	return &ExperienceHandler{q: q}
}

// @Summary List experiences
// @Description Filter by category and price range, sort and paginate
// @Tags experiences
// @Produce json
// @Param category query string false "Category"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort_by query string false "price | rating | reviews_count | created_at"
// @Param sort_order query string false "asc | desc"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/experiences [get]
func (h *ExperienceHandler) List(c *gin.Context) {
	var qp reqdto.ListExperiencesQuery
	if err := c.ShouldBindQuery(&qp); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", "")
		return
	}
	filter, err := qp.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), "")
		return
	}

	views, page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidPriceRange) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid price range", "min_price cannot exceed max_price")
			return
		}
		_ = c.Error(err)
		return
	}

	data, err := resdto.FromExperienceViews(views)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.Envelope{
		Success: true,
		Data:    data,
		Pagination: &resdto.PaginationResponse{
			Limit:  page.Limit,
			Offset: page.Offset,
			Count:  page.Count,
		},
	})
}

// @Summary Get experience
// @Description Experience detail with its future slots and remaining capacity
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/experiences/{id} [get]
func (h *ExperienceHandler) Get(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid experience ID", "")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortLookup(c, err, id)
		return
	}

	data, err := resdto.FromExperienceDetailView(view)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(data))
}

// @Summary List categories
// @Tags experiences
// @Produce json
// @Success 200 {object} resdto.Envelope
// @Router /api/experiences/categories [get]
func (h *ExperienceHandler) Categories(c *gin.Context) {
	cats, err := h.q.Categories(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(cats))
}

// @Summary Search experiences
// @Description Case-insensitive match on title and description, top 20 by rating
// @Tags experiences
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Router /api/experiences/search [get]
func (h *ExperienceHandler) Search(c *gin.Context) {
	views, err := h.q.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrSearchTermRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Search term is required", `Please provide a search term using the "q" query parameter`)
		case errs.Is(err, queries.ErrSearchTermTooShort):
			httperr.AbortWithError(c, http.StatusBadRequest, err,
				"Search term too short", fmt.Sprintf("Search term must be at least %d characters", queries.MinSearchLength))
		default:
			_ = c.Error(err)
		}
		return
	}

	data, err := resdto.FromExperienceViews(views)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resdto.WithCount(data, len(data)))
}

// @Summary List slots
// @Description Upcoming slots of an experience, optionally for one date
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/experiences/{id}/slots [get]
func (h *ExperienceHandler) Slots(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid experience ID", "")
		return
	}
	var qp reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&qp); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", "")
		return
	}
	onDate, err := qp.OnDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), "Expected YYYY-MM-DD")
		return
	}

	slots, err := h.q.Slots(c.Request.Context(), id, onDate)
	if err != nil {
		h.abortLookup(c, err, id)
		return
	}
	data := resdto.FromSlotViews(slots)
	c.JSON(http.StatusOK, resdto.WithCount(data, len(data)))
}

// @Summary List available dates
// @Tags experiences
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} resdto.Envelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/experiences/{id}/dates [get]
func (h *ExperienceHandler) Dates(c *gin.Context) {
	id, ok := reqdto.ParseID(c.Param("id"))
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid experience ID", "")
		return
	}

	dates, err := h.q.AvailableDates(c.Request.Context(), id)
	if err != nil {
		h.abortLookup(c, err, id)
		return
	}
	c.JSON(http.StatusOK, resdto.WithCount(dates, len(dates)))
}

func (h *ExperienceHandler) abortLookup(c *gin.Context, err error, id int64) {
	if errs.Is(err, queries.ErrExperienceNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err,
			"Experience not found", fmt.Sprintf("No experience found with ID %d", id))
		return
	}
	_ = c.Error(err)
}
