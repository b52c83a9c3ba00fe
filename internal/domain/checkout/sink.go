package checkout

import (
	"context"

	"stayhub/internal/domain/booking"
)

type GuestDetails struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type PaymentDetails struct {
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingAddress"`
}

// Payload is the wire shape the submission sink accepts.
type Payload struct {
	PropertyID     string         `json:"propertyId"`
	CheckInDate    string         `json:"checkInDate"`
	CheckOutDate   string         `json:"checkOutDate"`
	Guests         int            `json:"guests"`
	Nights         int            `json:"nights"`
	TotalPrice     float64        `json:"totalPrice"`
	GuestDetails   GuestDetails   `json:"guestDetails"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
}

// Sink durably records a finalized booking and returns a confirmation
// identifier. Any transport failure or non-2xx response surfaces as an
// error.
type Sink interface {
	Submit(ctx context.Context, payload Payload) (bookingID string, err error)
}

// BuildPayload assembles the sink payload from the handed-off intent and
// the validated form.
func BuildPayload(intent *booking.Intent, form GuestAndPaymentForm) Payload {
	return Payload{
		PropertyID:   intent.PropertyID(),
		CheckInDate:  intent.CheckIn().String(),
		CheckOutDate: intent.CheckOut().String(),
		Guests:       intent.Guests(),
		Nights:       intent.Nights(),
		TotalPrice:   intent.TotalPrice(),
		GuestDetails: GuestDetails{
			FirstName:   form.FirstName,
			LastName:    form.LastName,
			Email:       form.Email,
			PhoneNumber: form.PhoneNumber,
		},
		PaymentDetails: PaymentDetails{
			CardNumber:     form.CardNumber,
			ExpirationDate: form.ExpirationDate,
			CVV:            form.CVV,
			BillingAddress: form.BillingAddress,
		},
	}
}
