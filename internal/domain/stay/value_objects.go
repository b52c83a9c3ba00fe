package stay

import (
	"errors"
	"math"
	"time"
)

var (
	ErrMalformedDate    = errors.New("malformed calendar date")
	ErrIncompleteStay   = errors.New("both check-in and check-out dates are required")
	ErrNonChronological = errors.New("check-out must be after check-in")
)

const DateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component.
// The zero value means "not picked yet".
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD. An empty string parses to the zero Date,
// matching an untouched date picker.
func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrMalformedDate
	}
	return Date{t: t.UTC()}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Nights returns the span between two date-picker values in nights.
// Either date missing yields 0. A check-out earlier than check-in still
// yields a positive count via the absolute difference; callers wanting
// strict chronology must build a StayRange instead.
func Nights(checkIn, checkOut Date) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	diff := checkOut.t.Sub(checkIn.t)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// StayRange is a chronologically valid (check-in, check-out) pair.
type StayRange struct {
	checkIn  Date
	checkOut Date
}

func NewStayRange(checkIn, checkOut Date) (StayRange, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return StayRange{}, ErrIncompleteStay
	}
	if !checkIn.Before(checkOut) {
		return StayRange{}, ErrNonChronological
	}
	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}

func (r StayRange) CheckIn() Date {
	return r.checkIn
}

func (r StayRange) CheckOut() Date {
	return r.checkOut
}

func (r StayRange) Nights() int {
	return Nights(r.checkIn, r.checkOut)
}
