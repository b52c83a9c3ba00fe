package response

import (
	"stayhub/internal/domain/pricing"
	"stayhub/internal/usecase/queries"
)

// QuoteResponse is the presentation edge: this is the only place monetary
// amounts get rounded to two decimals.
type QuoteResponse struct {
	Model       string  `json:"model"`
	NightlyRate float64 `json:"nightlyRate"`
	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"serviceFee"`
	Taxes       float64 `json:"taxes"`
	BookingFee  float64 `json:"bookingFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		Model:       view.Model,
		NightlyRate: view.NightlyRate,
		Nights:      view.Nights,
		Subtotal:    pricing.Round2(view.Subtotal),
		ServiceFee:  pricing.Round2(view.ServiceFee),
		Taxes:       pricing.Round2(view.Taxes),
		BookingFee:  pricing.Round2(view.BookingFee),
		GrandTotal:  pricing.Round2(view.GrandTotal),
	}
}
