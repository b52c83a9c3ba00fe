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

// discoveryPath is where a checkout without an active intent gets sent
// back to; reaching checkout empty-handed is a routing precondition
// failure, not a renderable state.
const (
	discoveryPath = "/api/properties"
	checkoutPath  = "/api/checkout"
)

type CheckoutHandler struct {
	summaries queries.CheckoutQueries
	checkouts commands.CheckoutCommands
}

func NewCheckoutHandler(summaries queries.CheckoutQueries, checkouts commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{summaries: summaries, checkouts: checkouts}
}

// @Summary Checkout summary
// @Description Order details for the session's pending booking intent
// @Tags checkout
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Success 200 {object} resdto.CheckoutSummaryResponse
// @Failure 303 {string} string "Redirect to discovery when no intent is pending"
// @Router /checkout [get]
func (h *CheckoutHandler) Summary(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing session"), "Internal server error", nil)
		return
	}

	view, err := h.summaries.Summary(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, errs.ErrNoActiveIntent) {
			c.Redirect(http.StatusSeeOther, discoveryPath)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSummaryView(view))
}

// @Summary Submit booking
// @Description Validate the guest/payment form and submit the pending booking to the sink
// @Tags checkout
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID"
// @Param request body reqdto.SubmitBookingRequest true "Guest and payment form"
// @Success 201 {object} resdto.BookingConfirmationResponse
// @Failure 303 {string} string "Redirect to discovery when no intent is pending"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /checkout [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing session"), "Internal server error", nil)
		return
	}

	var req reqdto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.checkouts.Submit(c.Request.Context(), sessionID, req.ToForm())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoActiveIntent):
			c.Redirect(http.StatusSeeOther, discoveryPath)
		case errors.Is(err, errs.ErrValidationFailed):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Checkout form has errors", result.FieldErrors)
		case errors.Is(err, errs.ErrSubmissionInProgress):
			httperr.AbortWithError(c, http.StatusConflict, err, "A submission is already in progress", nil)
		case errors.Is(err, errs.ErrSubmissionFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, result.Failure, nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSubmitResult(result))
}
