//go:build unit

package pricing_test

import (
	"testing"

	"stayhub/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultFees() pricing.FeeSchedule {
	return pricing.FeeSchedule{
		ServiceFeeRate: 0.10,
		TaxRate:        0.05,
		BookingFee:     65,
	}
}

func TestEngineQuote(t *testing.T) {
	engine := pricing.NewEngine(defaultFees())

	tests := []struct {
		name        string
		model       pricing.Model
		nightlyRate float64
		nights      int
		want        pricing.Quote
	}{
		{
			name:        "per night three nights",
			model:       pricing.ModelPerNight,
			nightlyRate: 120,
			nights:      3,
			want: pricing.Quote{
				Model:       pricing.ModelPerNight,
				NightlyRate: 120,
				Nights:      3,
				Subtotal:    360,
				ServiceFee:  36,
				Taxes:       18,
				GrandTotal:  414,
			},
		},
		{
			name:        "per night zero nights quotes all zeros",
			model:       pricing.ModelPerNight,
			nightlyRate: 450,
			nights:      0,
			want: pricing.Quote{
				Model:       pricing.ModelPerNight,
				NightlyRate: 450,
			},
		},
		{
			name:        "flat fee uses the booking fee instead of percentages",
			model:       pricing.ModelFlatFee,
			nightlyRate: 7500,
			nights:      3,
			want: pricing.Quote{
				Model:       pricing.ModelFlatFee,
				NightlyRate: 7500,
				Nights:      3,
				Subtotal:    22500,
				BookingFee:  65,
				GrandTotal:  22565,
			},
		},
		{
			name:        "free stay still carries the flat fee",
			model:       pricing.ModelFlatFee,
			nightlyRate: 0,
			nights:      2,
			want: pricing.Quote{
				Model:      pricing.ModelFlatFee,
				Nights:     2,
				BookingFee: 65,
				GrandTotal: 65,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Quote(tt.model, tt.nightlyRate, tt.nights)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("quote mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEngineQuoteErrors(t *testing.T) {
	engine := pricing.NewEngine(defaultFees())

	tests := []struct {
		name        string
		model       pricing.Model
		nightlyRate float64
		nights      int
		wantErr     error
	}{
		{
			name:        "negative rate",
			model:       pricing.ModelPerNight,
			nightlyRate: -1,
			nights:      3,
			wantErr:     pricing.ErrNegativeRate,
		},
		{
			name:        "negative nights",
			model:       pricing.ModelPerNight,
			nightlyRate: 120,
			nights:      -1,
			wantErr:     pricing.ErrNegativeNights,
		},
		{
			name:        "unknown model",
			model:       pricing.Model("subscription"),
			nightlyRate: 120,
			nights:      3,
			wantErr:     pricing.ErrUnknownModel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Quote(tt.model, tt.nightlyRate, tt.nights)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestQuoteStaysUnrounded(t *testing.T) {
	// A rate that produces repeating decimals must survive the engine
	// untouched; only Round2 at the display edge may truncate.
	engine := pricing.NewEngine(pricing.FeeSchedule{ServiceFeeRate: 1.0 / 3.0})

	got, err := engine.Quote(pricing.ModelPerNight, 100, 1)
	require.NoError(t, err)
	assert.InDelta(t, 33.333333, got.ServiceFee, 1e-6)
	assert.Equal(t, 33.33, pricing.Round2(got.ServiceFee))
}

func TestModelIsValid(t *testing.T) {
	assert.True(t, pricing.ModelPerNight.IsValid())
	assert.True(t, pricing.ModelFlatFee.IsValid())
	assert.False(t, pricing.Model("").IsValid())
	assert.False(t, pricing.Model("hourly").IsValid())
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{414, 414},
		{36.666, 36.67},
		{0.004, 0},
		{-2.346, -2.35},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pricing.Round2(tt.in), "Round2(%v)", tt.in)
	}
}
