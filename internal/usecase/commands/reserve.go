package commands

import (
	"context"
	"errors"
	"log/slog"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/stay"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReserveParams struct {
	PropertyID  string
	CheckIn     stay.Date
	CheckOut    stay.Date
	Guests      int
	Prearranged bool
}

type ReservationCommands interface {
	// Reserve captures the user's chosen stay as a booking intent and
	// writes it to the session's handoff slot, overwriting any earlier
	// intent. The quoted grand total is frozen into the intent.
	Reserve(ctx context.Context, sessionID uuid.UUID, params ReserveParams) (*queries.IntentView, error)
}

type reservationCommandsImpl struct {
	properties PropertyReader
	intents    BookingIntentStore
	engine     *pricing.Engine
	clock      clock.Clock
	logger     *slog.Logger
}

func NewReservationCommands(
	properties PropertyReader,
	intents BookingIntentStore,
	engine *pricing.Engine,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		properties: properties,
		intents:    intents,
		engine:     engine,
		clock:      clk,
		logger:     logger,
	}
}

func (c *reservationCommandsImpl) Reserve(ctx context.Context, sessionID uuid.UUID, params ReserveParams) (*queries.IntentView, error) {
	p, err := c.properties.FindByID(ctx, params.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPropertyNotFound
		}
		return nil, errs.Wrap(err, "find property")
	}

	var (
		stayRange stay.StayRange
		model     pricing.Model
		guests    = params.Guests
	)
	if params.Prearranged {
		pre := p.Prearranged()
		if pre == nil {
			return nil, errs.ErrNoPrearrangedStay
		}
		stayRange = pre.Range
		model = pricing.ModelFlatFee
		if guests == 0 {
			guests = pre.Guests
		}
	} else {
		stayRange, err = stay.NewStayRange(params.CheckIn, params.CheckOut)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidStayRange)
		}
		model = pricing.ModelPerNight
	}

	quote, err := c.engine.Quote(model, p.NightlyRate(), stayRange.Nights())
	if err != nil {
		return nil, errs.Wrap(err, "compute quote")
	}

	it, err := booking.NewIntent(p.ID(), stayRange, guests, quote.GrandTotal, params.Prearranged, c.clock.Now())
	if err != nil {
		if errors.Is(err, booking.ErrInvalidGuestCount) {
			return nil, errs.Mark(err, errs.ErrInvalidGuestCount)
		}
		return nil, errs.Wrap(err, "build booking intent")
	}

	c.intents.Put(sessionID, it)

	c.logger.Info("booking intent captured",
		"session_id", sessionID.String(),
		"property_id", p.ID(),
		"nights", it.Nights(),
		"total_price", it.TotalPrice(),
	)

	view := queries.ToIntentView(it)
	return &view, nil
}
