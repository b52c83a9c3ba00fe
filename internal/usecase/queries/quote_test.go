//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stayhub/internal/domain/pricing"
	"stayhub/internal/domain/stay"
	"stayhub/internal/infra/catalog"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuoteQueries(t *testing.T) queries.QuoteQueries {
	t.Helper()
	properties, err := catalog.NewMemory()
	require.NoError(t, err)
	engine := pricing.NewEngine(pricing.FeeSchedule{
		ServiceFeeRate: 0.10,
		TaxRate:        0.05,
		BookingFee:     65,
	})
	return queries.NewQuoteQueries(properties, engine)
}

func TestForStay(t *testing.T) {
	t.Run("chosen dates yield an itemized quote", func(t *testing.T) {
		uc := newQuoteQueries(t)

		view, err := uc.ForStay(context.Background(), "1",
			stay.NewDate(2024, time.August, 24), stay.NewDate(2024, time.August, 27))
		require.NoError(t, err)

		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, float64(360), view.Subtotal)
		assert.Equal(t, float64(36), view.ServiceFee)
		assert.Equal(t, float64(18), view.Taxes)
		assert.Equal(t, float64(414), view.GrandTotal)
	})

	t.Run("absent dates quote zero nights instead of failing", func(t *testing.T) {
		uc := newQuoteQueries(t)

		view, err := uc.ForStay(context.Background(), "1", stay.Date{}, stay.Date{})
		require.NoError(t, err)

		assert.Zero(t, view.Nights)
		assert.Zero(t, view.GrandTotal)
	})

	t.Run("unknown property", func(t *testing.T) {
		uc := newQuoteQueries(t)

		_, err := uc.ForStay(context.Background(), "999", stay.Date{}, stay.Date{})
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})
}
