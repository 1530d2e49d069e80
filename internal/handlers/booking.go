package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/zoo-hotel-api/internal/auth"
	"github.com/gdg-garage/zoo-hotel-api/internal/booking"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/gdg-garage/zoo-hotel-api/internal/store"
)

type BookingHandler struct {
	service     *booking.Service
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewBookingHandler(service *booking.Service, store *store.Store, authHandler *auth.AuthHandler) *BookingHandler {
	return &BookingHandler{service: service, store: store, authHandler: authHandler}
}

type CreateBookingRequest struct {
	auth.AuthInput
	Body struct {
		ZooStart     string `json:"zoo_start" format:"date" doc:"First day of the zoo visit (YYYY-MM-DD)"`
		ZooEnd       string `json:"zoo_end" format:"date" doc:"Last day of the zoo visit, inclusive"`
		ChildTickets int    `json:"child_tickets,omitempty" minimum:"0" doc:"Number of child tickets"`
		AdultTickets int    `json:"adult_tickets,omitempty" minimum:"0" doc:"Number of adult tickets"`
		Educational  bool   `json:"educational_visit,omitempty" doc:"Educational visits get a discount on the visit cost"`
		RoomType     string `json:"room_type,omitempty" enum:"none,single,double,suite" default:"none" doc:"Hotel room type, none for a zoo-only booking"`
		HotelStart   string `json:"hotel_start,omitempty" doc:"Hotel arrival day (YYYY-MM-DD)"`
		HotelEnd     string `json:"hotel_end,omitempty" doc:"Hotel departure day (YYYY-MM-DD)"`
	}
}

type BookingResponse struct {
	Reference    string    `json:"reference"`
	ZooStart     string    `json:"zoo_start"`
	ZooEnd       string    `json:"zoo_end"`
	ChildTickets int       `json:"child_tickets"`
	AdultTickets int       `json:"adult_tickets"`
	Educational  bool      `json:"educational_visit"`
	RoomType     string    `json:"room_type"`
	RoomID       *uint     `json:"room_id,omitempty"`
	HotelStart   *string   `json:"hotel_start,omitempty"`
	HotelEnd     *string   `json:"hotel_end,omitempty"`
	TotalCost    string    `json:"total_cost" doc:"Total cost formatted with two decimals"`
	CreatedAt    time.Time `json:"created_at"`
}

func bookingResponse(b models.Booking) BookingResponse {
	res := BookingResponse{
		Reference:    b.Reference,
		ZooStart:     booking.FormatDay(b.VisitStart),
		ZooEnd:       booking.FormatDay(b.VisitEnd),
		ChildTickets: b.ChildTickets,
		AdultTickets: b.AdultTickets,
		Educational:  b.Educational,
		RoomType:     string(b.RoomType),
		RoomID:       b.RoomID,
		TotalCost:    b.TotalCost.StringFixed(2),
		CreatedAt:    b.CreatedAt,
	}
	if b.HotelStart != nil {
		s := booking.FormatDay(*b.HotelStart)
		res.HotelStart = &s
	}
	if b.HotelEnd != nil {
		s := booking.FormatDay(*b.HotelEnd)
		res.HotelEnd = &s
	}
	return res
}

type CreateBookingResponse struct {
	Body struct {
		Message       string          `json:"message"`
		Booking       BookingResponse `json:"booking"`
		LoyaltyPoints int             `json:"loyalty_points"`
	}
}

func (h *BookingHandler) HandleCreateBooking(ctx context.Context, input *CreateBookingRequest) (*CreateBookingResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.Require(ctx, userID, auth.CapCreateBooking); err != nil {
		return nil, err
	}

	req, err := bookingRequest(userID, input)
	if err != nil {
		return nil, err
	}

	outcome, err := h.service.Book(ctx, req)
	if err != nil {
		return nil, bookingError(err)
	}

	res := &CreateBookingResponse{}
	res.Body.Message = fmt.Sprintf("Booking confirmed. Total cost: %s", outcome.TotalCost.StringFixed(2))
	res.Body.Booking = bookingResponse(*outcome.Booking)
	res.Body.LoyaltyPoints = outcome.LoyaltyPoints
	return res, nil
}

func bookingRequest(userID uint, input *CreateBookingRequest) (booking.Request, error) {
	zooStart, err := booking.ParseDay(input.Body.ZooStart)
	if err != nil {
		return booking.Request{}, huma.Error400BadRequest("zoo_start must be a YYYY-MM-DD date")
	}
	zooEnd, err := booking.ParseDay(input.Body.ZooEnd)
	if err != nil {
		return booking.Request{}, huma.Error400BadRequest("zoo_end must be a YYYY-MM-DD date")
	}

	req := booking.Request{
		UserID: userID,
		Visit: booking.VisitRequest{
			Start:        zooStart,
			End:          zooEnd,
			ChildTickets: input.Body.ChildTickets,
			AdultTickets: input.Body.AdultTickets,
			Educational:  input.Body.Educational,
		},
	}

	roomType := models.RoomType(input.Body.RoomType)
	if roomType == "" || roomType == models.RoomTypeNone {
		return req, nil
	}
	if !roomType.Valid() {
		return booking.Request{}, huma.Error400BadRequest("room_type must be one of none, single, double, suite")
	}

	hotelStart, err := booking.ParseDay(input.Body.HotelStart)
	if err != nil {
		return booking.Request{}, huma.Error400BadRequest("hotel_start must be a YYYY-MM-DD date")
	}
	hotelEnd, err := booking.ParseDay(input.Body.HotelEnd)
	if err != nil {
		return booking.Request{}, huma.Error400BadRequest("hotel_end must be a YYYY-MM-DD date")
	}
	req.Hotel = &booking.HotelRequest{Start: hotelStart, End: hotelEnd, RoomType: roomType}

	return req, nil
}

// bookingError maps an aborted booking to an HTTP error carrying the reason.
func bookingError(err error) error {
	abortErr := booking.AsAbort(err)
	if abortErr == nil {
		return huma.Error500InternalServerError("Failed to process booking", err)
	}

	detail := &huma.ErrorDetail{Location: "body", Message: abortErr.Error(), Value: abortErr.Reason}
	switch {
	case errors.Is(err, booking.ErrRoomTypeUnavailable), errors.Is(err, booking.ErrNoRoomAvailable):
		return huma.Error409Conflict(string(abortErr.Reason)+": "+abortErr.Error(), detail)
	default:
		return huma.Error400BadRequest(string(abortErr.Reason)+": "+abortErr.Error(), detail)
	}
}

type ListBookingsRequest struct {
	auth.AuthInput
}

type ListBookingsResponse struct {
	Body []BookingResponse
}

func (h *BookingHandler) HandleListBookings(ctx context.Context, input *ListBookingsRequest) (*ListBookingsResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}

	bookings, err := h.store.Bookings(ctx, userID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list bookings")
	}

	res := &ListBookingsResponse{Body: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		res.Body = append(res.Body, bookingResponse(b))
	}
	return res, nil
}
