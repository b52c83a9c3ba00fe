package response

import (
	"stayhub/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type PrearrangedResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Nights   int    `json:"nights"`
	Guests   int    `json:"guests"`
}

type PropertyResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	NightlyRate float64              `json:"nightlyRate"`
	Amenities   []string             `json:"amenities"`
	MaxGuests   int                  `json:"maxGuests"`
	Prearranged *PrearrangedResponse `json:"prearranged,omitempty"`
}

func FromPropertyView(view *queries.PropertyView) *PropertyResponse {
	var resp PropertyResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPropertyViews(views []*queries.PropertyView) []*PropertyResponse {
	out := make([]*PropertyResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromPropertyView(v))
	}
	return out
}
