package pricing

import "errors"

var (
	ErrNegativeRate   = errors.New("nightly rate cannot be negative")
	ErrNegativeNights = errors.New("night count cannot be negative")
	ErrUnknownModel   = errors.New("unknown pricing model")
)

// Model selects which quote formula applies. The two formulas coexist on
// purpose: live date picking charges service fee plus taxes, while a
// prearranged stay charges a flat booking fee. Callers pick one explicitly.
type Model string

const (
	ModelPerNight Model = "per_night"
	ModelFlatFee  Model = "flat_fee"
)

func (m Model) String() string {
	return string(m)
}

func (m Model) IsValid() bool {
	switch m {
	case ModelPerNight, ModelFlatFee:
		return true
	default:
		return false
	}
}

// FeeSchedule is loaded from config once and never mutated afterwards.
type FeeSchedule struct {
	ServiceFeeRate float64
	TaxRate        float64
	BookingFee     float64
}

// Quote is an itemized price breakdown. Amounts stay unrounded; rounding
// to two decimals happens only at the presentation layer so repeated
// recomputation never compounds rounding error.
type Quote struct {
	Model       Model
	NightlyRate float64
	Nights      int
	Subtotal    float64
	ServiceFee  float64
	Taxes       float64
	BookingFee  float64
	GrandTotal  float64
}

type Engine struct {
	fees FeeSchedule
}

func NewEngine(fees FeeSchedule) *Engine {
	return &Engine{fees: fees}
}

func (e *Engine) Fees() FeeSchedule {
	return e.fees
}

// Quote computes a fresh itemized quote; inputs are never mutated.
func (e *Engine) Quote(model Model, nightlyRate float64, nights int) (Quote, error) {
	if nightlyRate < 0 {
		return Quote{}, ErrNegativeRate
	}
	if nights < 0 {
		return Quote{}, ErrNegativeNights
	}

	subtotal := nightlyRate * float64(nights)

	switch model {
	case ModelPerNight:
		serviceFee := subtotal * e.fees.ServiceFeeRate
		taxes := subtotal * e.fees.TaxRate
		return Quote{
			Model:       model,
			NightlyRate: nightlyRate,
			Nights:      nights,
			Subtotal:    subtotal,
			ServiceFee:  serviceFee,
			Taxes:       taxes,
			GrandTotal:  subtotal + serviceFee + taxes,
		}, nil
	case ModelFlatFee:
		return Quote{
			Model:       model,
			NightlyRate: nightlyRate,
			Nights:      nights,
			Subtotal:    subtotal,
			BookingFee:  e.fees.BookingFee,
			GrandTotal:  subtotal + e.fees.BookingFee,
		}, nil
	default:
		return Quote{}, ErrUnknownModel
	}
}

// Round2 rounds a monetary amount to two decimal places for display.
func Round2(v float64) float64 {
	if v >= 0 {
		return float64(int64(v*100+0.5)) / 100
	}
	return float64(int64(v*100-0.5)) / 100
}
