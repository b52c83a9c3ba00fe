package request

import (
	"stayhub/internal/domain/checkout"
)

// SubmitBookingRequest carries the guest and payment form as typed. Field
// rules live in the domain validator, not in binding tags, so a bad field
// comes back as a per-field message instead of a bind failure.
type SubmitBookingRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	CardNumber     string `json:"cardNumber"`
	ExpirationDate string `json:"expirationDate"`
	CVV            string `json:"cvv"`
	BillingAddress string `json:"billingAddress"`
}

func (r SubmitBookingRequest) ToForm() checkout.GuestAndPaymentForm {
	return checkout.GuestAndPaymentForm{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		CardNumber:     r.CardNumber,
		ExpirationDate: r.ExpirationDate,
		CVV:            r.CVV,
		BillingAddress: r.BillingAddress,
	}
}
