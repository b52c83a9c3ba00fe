//go:build unit

package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/checkout"
	"stayhub/internal/handler"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/infra/catalog"
	"stayhub/internal/infra/intent"
	"stayhub/internal/infra/reviews"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/config"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/helper"
	testhttp "stayhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type noopSink struct{}

func (noopSink) Submit(context.Context, checkout.Payload) (string, error) {
	return "BK000", nil
}

// PropertySuite covers the discovery endpoints: listing, detail, reviews
// and quoting. No sink is involved on this side of the handoff.
type PropertySuite struct {
	suite.Suite
	router *gin.Engine
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func (s *PropertySuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	properties, err := catalog.NewMemory()
	s.Require().NoError(err)
	feed, err := reviews.NewMemory()
	s.Require().NoError(err)
	intents := intent.NewStore()
	engine := pricingEngine(cfg)
	clk := clock.NewMockClock(time.Date(2024, time.August, 20, 12, 0, 0, 0, time.UTC))

	propertyQueries := queries.NewPropertyQueries(properties)
	reviewQueries := queries.NewReviewQueries(feed, properties)
	quoteQueries := queries.NewQuoteQueries(properties, engine)
	checkoutQueries := queries.NewCheckoutQueries(intents, properties, reviewQueries, engine)

	reservation := commands.NewReservationCommands(properties, intents, engine, clk, logger)
	checkoutCmd := commands.NewCheckoutCommands(intents, noopSink{}, logger)

	router := gin.New()
	handler.NewRouter(router, cfg,
		api.NewPropertyHandler(propertyQueries, reviewQueries, quoteQueries, reservation),
		api.NewCheckoutHandler(checkoutQueries, checkoutCmd),
	)
	s.router = router
}

func (s *PropertySuite) TestListProperties() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties", nil, "")

	var res []*resdto.PropertyResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

	s.Require().Len(res, 3)
	s.Equal("Cozy Downtown Apartment", res[0].Title)
	s.Equal("Luxury Beach House", res[1].Title)
	s.Equal("Villa Arrecife Beach House", res[2].Title)
}

func (s *PropertySuite) TestGetProperty() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties/3", nil, "")

	var res resdto.PropertyResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

	s.Equal("Villa Arrecife Beach House", res.Title)
	s.InDelta(7500, res.NightlyRate, 1e-9)
	s.Require().NotNil(res.Prearranged)
	s.Equal("2024-08-24", res.Prearranged.CheckIn)
	s.Equal("2024-08-27", res.Prearranged.CheckOut)
	s.Equal(3, res.Prearranged.Nights)
}

func (s *PropertySuite) TestGetUnknownProperty() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties/999", nil, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Property not found")
}

func (s *PropertySuite) TestListReviews() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/api/properties/1/reviews", nil, "")

	var res resdto.ReviewListResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

	s.Len(res.Reviews, 3)
	s.Equal(3, res.TotalReviews)
	s.InDelta(14.0/3.0, res.AverageRating, 1e-9)
}

func (s *PropertySuite) TestQuote() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/properties/1/quote", map[string]any{
		"checkInDate":  "2024-08-24",
		"checkOutDate": "2024-08-27",
	}, "")

	var res resdto.QuoteResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

	s.Equal(3, res.Nights)
	s.InDelta(360, res.Subtotal, 1e-9)
	s.InDelta(36, res.ServiceFee, 1e-9)
	s.InDelta(18, res.Taxes, 1e-9)
	s.InDelta(414, res.GrandTotal, 1e-9)
}

func (s *PropertySuite) TestQuoteWithIncompleteDates() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/properties/1/quote", map[string]any{
		"checkInDate": "2024-08-24",
	}, "")

	var res resdto.QuoteResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)

	s.Zero(res.Nights)
	s.Zero(res.GrandTotal)
}

func (s *PropertySuite) TestQuoteWithMalformedDate() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/properties/1/quote", map[string]any{
		"checkInDate":  "24/08/2024",
		"checkOutDate": "2024-08-27",
	}, "")
	testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
}

func (s *PropertySuite) TestReserveWithReversedDates() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/properties/1/reserve", map[string]any{
		"checkInDate":  "2024-08-27",
		"checkOutDate": "2024-08-24",
		"guests":       2,
	}, uuid.NewString())
	testhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Check-out must be after check-in")
}

func (s *PropertySuite) TestReservePrearrangedStay() {
	w := helper.PerformRequest(s.T(), s.router, http.MethodPost, "/api/properties/3/reserve", map[string]any{
		"prearranged": true,
	}, uuid.NewString())

	var res resdto.IntentResponse
	testhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)

	s.Equal("/api/checkout", w.Header().Get("Location"))
	s.Equal("3", res.PropertyID)
	s.Equal("2024-08-24", res.CheckIn)
	s.Equal(2, res.Guests)
	s.InDelta(22565, res.TotalPrice, 1e-9)
	s.True(res.Prearranged)
}
