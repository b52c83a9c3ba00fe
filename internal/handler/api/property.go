package api

import (
	"errors"
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	properties   queries.PropertyQueries
	reviews      queries.ReviewQueries
	quotes       queries.QuoteQueries
	reservations commands.ReservationCommands
}

func NewPropertyHandler(
	properties queries.PropertyQueries,
	reviews queries.ReviewQueries,
	quotes queries.QuoteQueries,
	reservations commands.ReservationCommands,
) *PropertyHandler {
	return &PropertyHandler{
		properties:   properties,
		reviews:      reviews,
		quotes:       quotes,
		reservations: reservations,
	}
}

// @Summary List properties
// @Description List every listing in the catalog
// @Tags properties
// @Produce json
// @Success 200 {array} resdto.PropertyResponse
// @Router /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	views, err := h.properties.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyViews(views))
}

// @Summary Get property
// @Description Get a single listing by ID
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	view, err := h.properties.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}

// @Summary List property reviews
// @Description Reviews for a listing plus the mean rating across them
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/reviews [get]
func (h *PropertyHandler) ListReviews(c *gin.Context) {
	views, stats, err := h.reviews.ListByProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewViews(views, stats))
}

// @Summary Quote a stay
// @Description Per-night quote for a candidate date pair; incomplete dates quote zero nights
// @Tags properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body reqdto.QuoteRequest true "Candidate dates"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/quote [post]
func (h *PropertyHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, checkOut, err := req.ToDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.quotes.ForStay(c.Request.Context(), c.Param("id"), checkIn, checkOut)
	if err != nil {
		if errors.Is(err, errs.ErrPropertyNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

// @Summary Reserve a stay
// @Description Capture a booking intent for the session and hand off to checkout
// @Tags properties
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Param id path string true "Property ID"
// @Param request body reqdto.ReserveRequest true "Chosen stay"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/reserve [post]
func (h *PropertyHandler) Reserve(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing session"), "Internal server error", nil)
		return
	}

	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.reservations.Reserve(c.Request.Context(), sessionID, params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Property not found", nil)
		case errors.Is(err, errs.ErrInvalidStayRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
		case errors.Is(err, errs.ErrInvalidGuestCount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest count must be between 1 and 8", nil)
		case errors.Is(err, errs.ErrNoPrearrangedStay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Property has no prearranged stay", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	// The client navigates to checkout next; Location points the way.
	c.Header("Location", checkoutPath)
	c.JSON(http.StatusCreated, resdto.FromIntentView(view))
}
