package booking

import (
	"errors"
	"time"

	"stayhub/internal/domain/stay"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyID   = errors.New("property id cannot be empty")
	ErrInvalidGuestCount = errors.New("guest count must be between 1 and 8")
	ErrNegativeTotal     = errors.New("total price cannot be negative")
)

const (
	MinGuests = 1
	MaxGuests = 8
)

// Intent is the minimal record of a chosen stay, written by the discovery
// flow at the moment of "reserve" and handed off to checkout. It never
// outlives the browsing session.
type Intent struct {
	id          uuid.UUID
	propertyID  string
	stayRange   stay.StayRange
	guests      int
	nights      int
	totalPrice  float64
	prearranged bool
	createdAt   time.Time
}

func NewIntent(
	propertyID string,
	stayRange stay.StayRange,
	guests int,
	totalPrice float64,
	prearranged bool,
	now time.Time,
) (*Intent, error) {
	if propertyID == "" {
		return nil, ErrEmptyPropertyID
	}
	if guests < MinGuests || guests > MaxGuests {
		return nil, ErrInvalidGuestCount
	}
	if totalPrice < 0 {
		return nil, ErrNegativeTotal
	}

	return &Intent{
		id:          uuid.New(),
		propertyID:  propertyID,
		stayRange:   stayRange,
		guests:      guests,
		nights:      stayRange.Nights(),
		totalPrice:  totalPrice,
		prearranged: prearranged,
		createdAt:   now,
	}, nil
}

func (i *Intent) ID() uuid.UUID             { return i.id }
func (i *Intent) PropertyID() string        { return i.propertyID }
func (i *Intent) StayRange() stay.StayRange { return i.stayRange }
func (i *Intent) CheckIn() stay.Date        { return i.stayRange.CheckIn() }
func (i *Intent) CheckOut() stay.Date       { return i.stayRange.CheckOut() }
func (i *Intent) Guests() int               { return i.guests }
func (i *Intent) Nights() int               { return i.nights }
func (i *Intent) TotalPrice() float64       { return i.totalPrice }
func (i *Intent) Prearranged() bool         { return i.prearranged }
func (i *Intent) CreatedAt() time.Time      { return i.createdAt }
