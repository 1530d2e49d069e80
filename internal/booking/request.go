package booking

import (
	"time"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
)

const dateLayout = "2006-01-02"

// VisitRequest describes the zoo part of a booking. Dates are inclusive.
type VisitRequest struct {
	Start        time.Time
	End          time.Time
	ChildTickets int
	AdultTickets int
	Educational  bool
}

// HotelRequest describes an optional hotel stay. End is the departure day.
type HotelRequest struct {
	Start    time.Time
	End      time.Time
	RoomType models.RoomType
}

type Request struct {
	UserID uint
	Visit  VisitRequest
	Hotel  *HotelRequest
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// FormatDay renders t as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(dateLayout)
}

const secondsPerDay = 24 * 60 * 60

// daysBetween counts whole calendar days from start to end. It works on Unix
// seconds of the UTC midnights, which unlike time.Duration do not saturate
// for ranges longer than about 292 years.
func daysBetween(start, end time.Time) int {
	return int(Day(end).Unix()/secondsPerDay - Day(start).Unix()/secondsPerDay)
}

func (r *Request) normalize() {
	r.Visit.Start = Day(r.Visit.Start)
	r.Visit.End = Day(r.Visit.End)
	if r.Hotel != nil && r.Hotel.RoomType == models.RoomTypeNone {
		r.Hotel = nil
	}
	if r.Hotel != nil {
		hotel := *r.Hotel
		r.Hotel = &hotel
		r.Hotel.Start = Day(r.Hotel.Start)
		r.Hotel.End = Day(r.Hotel.End)
	}
}
