package response

import (
	"stayhub/internal/domain/pricing"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
)

type IntentResponse struct {
	PropertyID  string  `json:"propertyId"`
	CheckIn     string  `json:"checkIn"`
	CheckOut    string  `json:"checkOut"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"totalPrice"`
	Prearranged bool    `json:"prearranged"`
}

func FromIntentView(view *queries.IntentView) *IntentResponse {
	return &IntentResponse{
		PropertyID:  view.PropertyID,
		CheckIn:     view.CheckIn,
		CheckOut:    view.CheckOut,
		Guests:      view.Guests,
		Nights:      view.Nights,
		TotalPrice:  pricing.Round2(view.TotalPrice),
		Prearranged: view.Prearranged,
	}
}

type CheckoutSummaryResponse struct {
	Intent        IntentResponse   `json:"intent"`
	Property      PropertyResponse `json:"property"`
	TotalReviews  int              `json:"totalReviews"`
	AverageRating float64          `json:"averageRating"`
	Quote         QuoteResponse    `json:"quote"`
}

func FromCheckoutSummaryView(view *queries.CheckoutSummaryView) *CheckoutSummaryResponse {
	return &CheckoutSummaryResponse{
		Intent:        *FromIntentView(&view.Intent),
		Property:      *FromPropertyView(&view.Property),
		TotalReviews:  view.Rating.TotalReviews,
		AverageRating: view.Rating.AverageRating,
		Quote:         *FromQuoteView(&view.Quote),
	}
}

type BookingConfirmationResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

func FromSubmitResult(result *commands.SubmitResult) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		BookingID: result.BookingID,
		Status:    result.State.String(),
	}
}
