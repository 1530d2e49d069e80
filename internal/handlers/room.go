package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/zoo-hotel-api/internal/auth"
	"github.com/gdg-garage/zoo-hotel-api/internal/booking"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/gdg-garage/zoo-hotel-api/internal/store"
	"github.com/shopspring/decimal"
)

type RoomHandler struct {
	store       *store.Store
	authHandler *auth.AuthHandler
}

func NewRoomHandler(store *store.Store, authHandler *auth.AuthHandler) *RoomHandler {
	return &RoomHandler{store: store, authHandler: authHandler}
}

type RoomResponse struct {
	ID            uint    `json:"id"`
	RoomType      string  `json:"room_type"`
	NightlyPrice  string  `json:"nightly_price"`
	AvailableFrom *string `json:"available_from,omitempty" doc:"First day a new stay may start; absent when the room was never booked"`
}

func roomResponse(r models.Room) RoomResponse {
	res := RoomResponse{
		ID:           r.ID,
		RoomType:     string(r.RoomType),
		NightlyPrice: r.NightlyPrice.StringFixed(2),
	}
	if r.AvailableFrom != nil {
		s := booking.FormatDay(*r.AvailableFrom)
		res.AvailableFrom = &s
	}
	return res
}

type CreateRoomRequest struct {
	auth.AuthInput
	Body struct {
		RoomType     string `json:"room_type" enum:"single,double,suite" doc:"Room type"`
		NightlyPrice string `json:"nightly_price" doc:"Price per night, decimal string"`
	}
}

type CreateRoomResponse struct {
	Body RoomResponse
}

func (h *RoomHandler) HandleCreateRoom(ctx context.Context, input *CreateRoomRequest) (*CreateRoomResponse, error) {
	userID, err := h.authHandler.Authorize(ctx, input.AuthInput)
	if err != nil {
		return nil, err
	}
	if _, err := h.authHandler.Require(ctx, userID, auth.CapManageRooms); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(input.Body.NightlyPrice)
	if err != nil {
		return nil, huma.Error400BadRequest("nightly_price must be a decimal number")
	}

	room, err := booking.NewRoom(models.RoomType(input.Body.RoomType), price)
	switch {
	case errors.Is(err, booking.ErrUnknownRoomType):
		return nil, huma.Error400BadRequest("room_type must be one of single, double, suite")
	case errors.Is(err, booking.ErrInvalidRoomPrice):
		return nil, huma.Error400BadRequest("nightly_price must not be negative")
	case err != nil:
		return nil, huma.Error500InternalServerError("Failed to build room")
	}

	if err := h.store.CreateRoom(ctx, &room); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create room")
	}

	return &CreateRoomResponse{Body: roomResponse(room)}, nil
}

type ListRoomsRequest struct {
	auth.AuthInput
	RoomType string `query:"room_type" enum:"single,double,suite" doc:"Only list rooms of this type"`
}

type ListRoomsResponse struct {
	Body []RoomResponse
}

func (h *RoomHandler) HandleListRooms(ctx context.Context, input *ListRoomsRequest) (*ListRoomsResponse, error) {
	if _, err := h.authHandler.Authorize(ctx, input.AuthInput); err != nil {
		return nil, err
	}

	rooms, err := h.store.Rooms(ctx, models.RoomType(input.RoomType))
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list rooms")
	}

	res := &ListRoomsResponse{Body: make([]RoomResponse, 0, len(rooms))}
	for _, r := range rooms {
		res.Body = append(res.Body, roomResponse(r))
	}
	return res, nil
}
