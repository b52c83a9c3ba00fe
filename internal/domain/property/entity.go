package property

import (
	"errors"
	"strings"

	"stayhub/internal/domain/stay"
)

var (
	ErrEmptyPropertyID    = errors.New("property id cannot be empty")
	ErrEmptyTitle         = errors.New("property title cannot be empty")
	ErrTitleTooLong       = errors.New("property title is too long (max 255 characters)")
	ErrNegativeRate       = errors.New("nightly rate cannot be negative")
	ErrInvalidPrearranged = errors.New("prearranged stay must have a valid range")
)

const MaxTitleLength = 255

// PrearrangedStay is a fixed promotional stay attached to a listing; it
// checks out through the flat-fee path instead of live date picking.
type PrearrangedStay struct {
	Range  stay.StayRange
	Guests int
}

type Property struct {
	id          string
	title       string
	description string
	location    string
	nightlyRate float64
	amenities   []string
	maxGuests   int
	prearranged *PrearrangedStay
}

func NewProperty(
	id string,
	title string,
	description string,
	location string,
	nightlyRate float64,
	amenities []string,
	maxGuests int,
	prearranged *PrearrangedStay,
) (*Property, error) {
	if id == "" {
		return nil, ErrEmptyPropertyID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if nightlyRate < 0 {
		return nil, ErrNegativeRate
	}
	if prearranged != nil && prearranged.Range.Nights() == 0 {
		return nil, ErrInvalidPrearranged
	}

	return &Property{
		id:          id,
		title:       title,
		description: description,
		location:    location,
		nightlyRate: nightlyRate,
		amenities:   amenities,
		maxGuests:   maxGuests,
		prearranged: prearranged,
	}, nil
}

func (p *Property) ID() string           { return p.id }
func (p *Property) Title() string        { return p.title }
func (p *Property) Description() string  { return p.description }
func (p *Property) Location() string     { return p.location }
func (p *Property) NightlyRate() float64 { return p.nightlyRate }
func (p *Property) Amenities() []string  { return p.amenities }
func (p *Property) MaxGuests() int       { return p.maxGuests }

// Prearranged returns the promotional stay, or nil for ordinary listings.
func (p *Property) Prearranged() *PrearrangedStay { return p.prearranged }
