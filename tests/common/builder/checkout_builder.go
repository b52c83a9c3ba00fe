//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/checkout"
	"stayhub/internal/domain/stay"
	reqdto "stayhub/internal/handler/dto/request"
)

// FormBuilder produces a fully valid guest/payment form; tests mutate
// single fields to trigger specific rules.
type FormBuilder struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	CardNumber     string
	ExpirationDate string
	CVV            string
	BillingAddress string
}

func NewFormBuilder() *FormBuilder {
	return &FormBuilder{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@example.com",
		PhoneNumber:    "+1 (555) 123-4567",
		CardNumber:     "4111 1111 1111 1111",
		ExpirationDate: "12/27",
		CVV:            "123",
		BillingAddress: "123 Main Street, New York, NY 10001",
	}
}

func (b *FormBuilder) With(mutate func(*FormBuilder)) *FormBuilder {
	mutate(b)
	return b
}

func (b *FormBuilder) BuildForm() checkout.GuestAndPaymentForm {
	return checkout.GuestAndPaymentForm{
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		PhoneNumber:    b.PhoneNumber,
		CardNumber:     b.CardNumber,
		ExpirationDate: b.ExpirationDate,
		CVV:            b.CVV,
		BillingAddress: b.BillingAddress,
	}
}

func (b *FormBuilder) BuildSubmitRequestDTO() reqdto.SubmitBookingRequest {
	return reqdto.SubmitBookingRequest{
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Email:          b.Email,
		PhoneNumber:    b.PhoneNumber,
		CardNumber:     b.CardNumber,
		ExpirationDate: b.ExpirationDate,
		CVV:            b.CVV,
		BillingAddress: b.BillingAddress,
	}
}

// IntentBuilder produces a booking intent for the seeded downtown listing.
type IntentBuilder struct {
	PropertyID  string
	CheckIn     stay.Date
	CheckOut    stay.Date
	Guests      int
	TotalPrice  float64
	Prearranged bool
	CreatedAt   time.Time
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{
		PropertyID: "1",
		CheckIn:    stay.NewDate(2024, time.August, 24),
		CheckOut:   stay.NewDate(2024, time.August, 27),
		Guests:     2,
		TotalPrice: 414,
		CreatedAt:  time.Now(),
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

func (b *IntentBuilder) BuildDomain() (*booking.Intent, error) {
	stayRange, err := stay.NewStayRange(b.CheckIn, b.CheckOut)
	if err != nil {
		return nil, err
	}
	return booking.NewIntent(b.PropertyID, stayRange, b.Guests, b.TotalPrice, b.Prearranged, b.CreatedAt)
}
