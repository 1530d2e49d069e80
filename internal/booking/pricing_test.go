package booking

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func decimalInt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestPrice_TicketTiers(t *testing.T) {
	p := DefaultPricing()

	for child := 0; child <= 3; child++ {
		for adult := 0; adult <= 3; adult++ {
			if child == 0 && adult == 0 {
				continue
			}
			for nights := 1; nights <= 4; nights++ {
				got, err := p.Price(Quote{ChildTickets: child, AdultTickets: adult, VisitNights: nights})
				if err != nil {
					t.Fatalf("Price returned error: %v", err)
				}
				want := decimalInt(int64((child*10 + adult*20) * nights))
				if !got.Equal(want) {
					t.Errorf("child=%d adult=%d nights=%d: expected %s, got %s", child, adult, nights, want, got)
				}
			}
		}
	}
}

func TestPrice_EducationalDiscount(t *testing.T) {
	p := DefaultPricing()
	multiplier := decimal.RequireFromString("0.9")

	for child := 0; child <= 5; child++ {
		for adult := 0; adult <= 5; adult++ {
			for nights := 1; nights <= 7; nights++ {
				q := Quote{ChildTickets: child, AdultTickets: adult, VisitNights: nights}
				regular, _ := p.Price(q)
				q.Educational = true
				educational, _ := p.Price(q)

				if !educational.Equal(regular.Mul(multiplier)) {
					t.Errorf("child=%d adult=%d nights=%d: expected %s, got %s", child, adult, nights, regular.Mul(multiplier), educational)
				}
			}
		}
	}
}

func TestPrice_DiscountSkipsHotel(t *testing.T) {
	p := DefaultPricing()

	got, err := p.Price(Quote{
		AdultTickets:     1,
		VisitNights:      1,
		Educational:      true,
		RoomNightlyPrice: decimalInt(100),
		HotelNights:      2,
	})
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if want := decimal.RequireFromString("218"); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestPrice_NegativeInput(t *testing.T) {
	p := DefaultPricing()

	cases := map[string]Quote{
		"child": {ChildTickets: -1, VisitNights: 1},
		"adult": {AdultTickets: -1, VisitNights: 1},
		"visit": {AdultTickets: 1, VisitNights: -1},
		"hotel": {AdultTickets: 1, VisitNights: 1, HotelNights: -1},
		"price": {AdultTickets: 1, VisitNights: 1, HotelNights: 1, RoomNightlyPrice: decimalInt(-5)},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := p.Price(q); !errors.Is(err, ErrInvalidPricingInput) {
				t.Errorf("expected ErrInvalidPricingInput, got %v", err)
			}
		})
	}
}

func TestNightCounting(t *testing.T) {
	if got := VisitNights(day("2024-06-01"), day("2024-06-01")); got != 1 {
		t.Errorf("same-day visit: expected 1, got %d", got)
	}
	if got := VisitNights(day("2024-06-01"), day("2024-06-03")); got != 3 {
		t.Errorf("three-day visit: expected 3, got %d", got)
	}
	if got := HotelNights(day("2024-06-01"), day("2024-06-03")); got != 2 {
		t.Errorf("hotel day 1 to day 3: expected 2, got %d", got)
	}
	if got := HotelNights(day("2024-02-28"), day("2024-03-01")); got != 2 {
		t.Errorf("hotel across leap day: expected 2, got %d", got)
	}
}

func TestNightCounting_LongRanges(t *testing.T) {
	// 1700-01-01 to 2100-01-01 is one full 400-year Gregorian cycle.
	start, end := day("1700-01-01"), day("2100-01-01")

	if got := HotelNights(start, end); got != 146097 {
		t.Errorf("hotel nights: expected 146097, got %d", got)
	}
	if got := VisitNights(start, end); got != 146098 {
		t.Errorf("visit days: expected 146098, got %d", got)
	}

	p := DefaultPricing()
	got, err := p.Price(Quote{AdultTickets: 1, VisitNights: VisitNights(start, end)})
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if !got.Equal(decimalInt(2921960)) {
		t.Errorf("expected 2921960, got %s", got)
	}
}

func TestNewPricing(t *testing.T) {
	p, err := NewPricing("12.50", "25", "0.85")
	if err != nil {
		t.Fatalf("NewPricing returned error: %v", err)
	}
	got, _ := p.Price(Quote{ChildTickets: 2, AdultTickets: 1, VisitNights: 1, Educational: true})
	if want := decimal.RequireFromString("42.5"); !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}

	if _, err := NewPricing("ten", "20", "0.9"); err == nil {
		t.Error("expected error for non-numeric child price")
	}
	if _, err := NewPricing("10", "-20", "0.9"); !errors.Is(err, ErrInvalidPricingInput) {
		t.Errorf("expected ErrInvalidPricingInput, got %v", err)
	}
}
