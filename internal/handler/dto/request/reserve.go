package request

import (
	"stayhub/internal/domain/stay"
	"stayhub/internal/usecase/commands"
)

// ReserveRequest mirrors the booking widget: two date pickers, a guest
// count, and the prearranged flag for promotional stays whose dates are
// fixed by the listing.
type ReserveRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Guests       int    `json:"guests"`
	Prearranged  bool   `json:"prearranged"`
}

func (r ReserveRequest) ToParams(propertyID string) (commands.ReserveParams, error) {
	checkIn, err := stay.ParseDate(r.CheckInDate)
	if err != nil {
		return commands.ReserveParams{}, err
	}
	checkOut, err := stay.ParseDate(r.CheckOutDate)
	if err != nil {
		return commands.ReserveParams{}, err
	}
	return commands.ReserveParams{
		PropertyID:  propertyID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      r.Guests,
		Prearranged: r.Prearranged,
	}, nil
}

// QuoteRequest carries a possibly incomplete date pair; quoting is safe to
// call on every picker change, so neither date is required.
type QuoteRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

func (r QuoteRequest) ToDates() (checkIn, checkOut stay.Date, err error) {
	checkIn, err = stay.ParseDate(r.CheckInDate)
	if err != nil {
		return stay.Date{}, stay.Date{}, err
	}
	checkOut, err = stay.ParseDate(r.CheckOutDate)
	if err != nil {
		return stay.Date{}, stay.Date{}, err
	}
	return checkIn, checkOut, nil
}
