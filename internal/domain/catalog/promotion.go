package catalog

import (
	"time"

	"github.com/go-faster/errors"
)

// Sentinel errors for promotion construction.
var (
	ErrInvalidBuyQuantity = errors.New("promotion buy quantity must be at least 1")
	ErrInvalidGetQuantity = errors.New("promotion get quantity must be at least 1")
	ErrInvalidDateRange   = errors.New("promotion start date must not be after end date")
	ErrBlankPromotionName = errors.New("promotion name must not be blank")
)

// Promotion is a buy-B-get-G-free offer valid inside an inclusive date window.
// It is immutable after construction.
type Promotion struct {
	Name   string
	Buy    int
	Get    int
	Starts time.Time
	Ends   time.Time
}

// NewPromotion validates and constructs a Promotion. Start and end dates are
// truncated to day precision; the window is inclusive on both ends.
func NewPromotion(name string, buy, get int, starts, ends time.Time) (*Promotion, error) {
	if name == "" {
		return nil, ErrBlankPromotionName
	}
	if buy < 1 {
		return nil, errors.Wrapf(ErrInvalidBuyQuantity, "promotion %s", name)
	}
	if get < 1 {
		return nil, errors.Wrapf(ErrInvalidGetQuantity, "promotion %s", name)
	}

	starts = day(starts)
	ends = day(ends)
	if starts.After(ends) {
		return nil, errors.Wrapf(ErrInvalidDateRange, "promotion %s", name)
	}

	return &Promotion{
		Name:   name,
		Buy:    buy,
		Get:    get,
		Starts: starts,
		Ends:   ends,
	}, nil
}

// SetSize returns the unit block in which promotional savings are granted:
// buy quantity plus free quantity.
func (p *Promotion) SetSize() int {
	return p.Buy + p.Get
}

// ActiveOn reports whether the promotion applies on the given date.
// Both window boundaries are inclusive.
func (p *Promotion) ActiveOn(date time.Time) bool {
	d := day(date)
	return !d.Before(p.Starts) && !d.After(p.Ends)
}

// day strips the time-of-day component and the location, so dates parsed in
// UTC and clocks running in a local zone compare by civil date.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
