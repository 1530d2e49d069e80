package booking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Pricing holds the ticket tiers and the educational discount multiplier.
type Pricing struct {
	ChildRate             decimal.Decimal
	AdultRate             decimal.Decimal
	EducationalMultiplier decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		ChildRate:             decimal.NewFromInt(10),
		AdultRate:             decimal.NewFromInt(20),
		EducationalMultiplier: decimal.RequireFromString("0.9"),
	}
}

// NewPricing parses configured rates.
func NewPricing(childRate, adultRate, educationalMultiplier string) (Pricing, error) {
	child, err := decimal.NewFromString(childRate)
	if err != nil {
		return Pricing{}, fmt.Errorf("parse child ticket price %q: %w", childRate, err)
	}
	adult, err := decimal.NewFromString(adultRate)
	if err != nil {
		return Pricing{}, fmt.Errorf("parse adult ticket price %q: %w", adultRate, err)
	}
	multiplier, err := decimal.NewFromString(educationalMultiplier)
	if err != nil {
		return Pricing{}, fmt.Errorf("parse educational multiplier %q: %w", educationalMultiplier, err)
	}
	if child.IsNegative() || adult.IsNegative() || multiplier.IsNegative() {
		return Pricing{}, ErrInvalidPricingInput
	}

	return Pricing{ChildRate: child, AdultRate: adult, EducationalMultiplier: multiplier}, nil
}

// Quote is everything the price of a booking depends on.
type Quote struct {
	ChildTickets     int
	AdultTickets     int
	VisitNights      int
	Educational      bool
	RoomNightlyPrice decimal.Decimal
	HotelNights      int
}

// VisitNights counts zoo days inclusively: a same-day visit is one.
func VisitNights(start, end time.Time) int {
	return daysBetween(start, end) + 1
}

// HotelNights counts nights stayed: arrival day 1, departure day 3 is two.
func HotelNights(start, end time.Time) int {
	return daysBetween(start, end)
}

// Price returns the exact total for q. The educational multiplier applies to
// the whole visit cost, never to the hotel part.
func (p Pricing) Price(q Quote) (decimal.Decimal, error) {
	if q.ChildTickets < 0 || q.AdultTickets < 0 || q.VisitNights < 0 || q.HotelNights < 0 || q.RoomNightlyPrice.IsNegative() {
		return decimal.Zero, ErrInvalidPricingInput
	}

	tickets := p.ChildRate.Mul(decimal.NewFromInt(int64(q.ChildTickets))).
		Add(p.AdultRate.Mul(decimal.NewFromInt(int64(q.AdultTickets))))

	visit := tickets.Mul(decimal.NewFromInt(int64(q.VisitNights)))
	if q.Educational {
		visit = visit.Mul(p.EducationalMultiplier)
	}

	hotel := q.RoomNightlyPrice.Mul(decimal.NewFromInt(int64(q.HotelNights)))

	return visit.Add(hotel), nil
}
