package queries

import (
	"context"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

type IntentView struct {
	PropertyID  string  `json:"property_id"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Guests      int     `json:"guests"`
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"total_price"`
	Prearranged bool    `json:"prearranged"`
}

type CheckoutSummaryView struct {
	Intent   IntentView          `json:"intent"`
	Property PropertyView        `json:"property"`
	Rating   PropertyRatingStats `json:"rating"`
	Quote    QuoteView           `json:"quote"`
}

// IntentReader is the checkout view's read side of the booking intent
// handoff. Reading here never consumes the slot; a failed submission must
// leave the intent in place for a manual retry.
type IntentReader interface {
	Peek(sessionID uuid.UUID) (*booking.Intent, bool)
}

type CheckoutQueries interface {
	// Summary renders the checkout view's order details. ErrNoActiveIntent
	// is a routing precondition failure: the caller redirects back to
	// discovery instead of rendering.
	Summary(ctx context.Context, sessionID uuid.UUID) (*CheckoutSummaryView, error)
}

type checkoutQueriesImpl struct {
	intents    IntentReader
	properties PropertyReadStore
	reviews    ReviewQueries
	engine     *pricing.Engine
}

func NewCheckoutQueries(
	intents IntentReader,
	properties PropertyReadStore,
	reviews ReviewQueries,
	engine *pricing.Engine,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		intents:    intents,
		properties: properties,
		reviews:    reviews,
		engine:     engine,
	}
}

func (q *checkoutQueriesImpl) Summary(ctx context.Context, sessionID uuid.UUID) (*CheckoutSummaryView, error) {
	it, ok := q.intents.Peek(sessionID)
	if !ok {
		return nil, errs.ErrNoActiveIntent
	}

	p, err := q.properties.FindByID(ctx, it.PropertyID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "find property")
	}

	_, stats, err := q.reviews.ListByProperty(ctx, it.PropertyID())
	if err != nil {
		return nil, err
	}

	model := pricing.ModelPerNight
	if it.Prearranged() {
		model = pricing.ModelFlatFee
	}
	quote, err := q.engine.Quote(model, p.NightlyRate(), it.Nights())
	if err != nil {
		return nil, errs.Wrap(err, "compute quote")
	}

	return &CheckoutSummaryView{
		Intent:   ToIntentView(it),
		Property: *ToPropertyView(p),
		Rating:   *stats,
		Quote:    *ToQuoteView(quote),
	}, nil
}

func ToIntentView(it *booking.Intent) IntentView {
	return IntentView{
		PropertyID:  it.PropertyID(),
		CheckIn:     it.CheckIn().String(),
		CheckOut:    it.CheckOut().String(),
		Guests:      it.Guests(),
		Nights:      it.Nights(),
		TotalPrice:  it.TotalPrice(),
		Prearranged: it.Prearranged(),
	}
}
