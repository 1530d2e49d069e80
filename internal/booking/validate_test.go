package booking

import (
	"errors"
	"testing"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
)

func TestValidate(t *testing.T) {
	visit := VisitRequest{Start: day("2024-06-01"), End: day("2024-06-03"), ChildTickets: 1}

	tests := []struct {
		name  string
		visit VisitRequest
		hotel *HotelRequest
		want  error
	}{
		{name: "valid zoo only", visit: visit},
		{name: "same-day visit", visit: VisitRequest{Start: day("2024-06-01"), End: day("2024-06-01"), AdultTickets: 1}},
		{
			name:  "valid hotel",
			visit: visit,
			hotel: &HotelRequest{Start: day("2024-06-01"), End: day("2024-06-02"), RoomType: models.RoomTypeSingle},
		},
		{
			name:  "no tickets",
			visit: VisitRequest{Start: day("2024-06-01"), End: day("2024-06-03")},
			want:  ErrEmptyTicketSelection,
		},
		{
			name:  "negative tickets only",
			visit: VisitRequest{Start: day("2024-06-01"), End: day("2024-06-03"), ChildTickets: -1},
			want:  ErrEmptyTicketSelection,
		},
		{
			name:  "negative child with adults",
			visit: VisitRequest{Start: day("2024-06-01"), End: day("2024-06-03"), ChildTickets: -1, AdultTickets: 2},
			want:  ErrInvalidPricingInput,
		},
		{
			name:  "end before start",
			visit: VisitRequest{Start: day("2024-06-03"), End: day("2024-06-01"), AdultTickets: 1},
			want:  ErrInvalidDateOrder,
		},
		{
			name:  "zero-night hotel",
			visit: visit,
			hotel: &HotelRequest{Start: day("2024-06-01"), End: day("2024-06-01"), RoomType: models.RoomTypeDouble},
			want:  ErrInvalidHotelStay,
		},
		{
			name:  "hotel ends before it starts",
			visit: visit,
			hotel: &HotelRequest{Start: day("2024-06-03"), End: day("2024-06-01"), RoomType: models.RoomTypeSuite},
			want:  ErrInvalidHotelStay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.visit, tt.hotel)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
