package queries

import (
	"context"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/stay"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

// QuoteView keeps the engine's unrounded amounts; response DTOs round to
// two decimals at the edge.
type QuoteView struct {
	Model       string  `json:"model"`
	NightlyRate float64 `json:"nightly_rate"`
	Nights      int     `json:"nights"`
	Subtotal    float64 `json:"subtotal"`
	ServiceFee  float64 `json:"service_fee"`
	Taxes       float64 `json:"taxes"`
	BookingFee  float64 `json:"booking_fee"`
	GrandTotal  float64 `json:"grand_total"`
}

type QuoteQueries interface {
	// ForStay quotes the per-night model for a candidate date pair. Either
	// date may be absent (an untouched picker): the quote then carries
	// zero nights and zero amounts rather than an error, so the caller
	// can re-quote on every input change.
	ForStay(ctx context.Context, propertyID string, checkIn, checkOut stay.Date) (*QuoteView, error)
}

type quoteQueriesImpl struct {
	properties PropertyReadStore
	engine     *pricing.Engine
}

func NewQuoteQueries(properties PropertyReadStore, engine *pricing.Engine) QuoteQueries {
	return &quoteQueriesImpl{properties: properties, engine: engine}
}

func (q *quoteQueriesImpl) ForStay(ctx context.Context, propertyID string, checkIn, checkOut stay.Date) (*QuoteView, error) {
	p, err := q.properties.FindByID(ctx, propertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "find property")
	}

	nights := stay.Nights(checkIn, checkOut)
	quote, err := q.engine.Quote(pricing.ModelPerNight, p.NightlyRate(), nights)
	if err != nil {
		return nil, errs.Wrap(err, "compute quote")
	}
	return ToQuoteView(quote), nil
}

func ToQuoteView(q pricing.Quote) *QuoteView {
	return &QuoteView{
		Model:       q.Model.String(),
		NightlyRate: q.NightlyRate,
		Nights:      q.Nights,
		Subtotal:    q.Subtotal,
		ServiceFee:  q.ServiceFee,
		Taxes:       q.Taxes,
		BookingFee:  q.BookingFee,
		GrandTotal:  q.GrandTotal,
	}
}
