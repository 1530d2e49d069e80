package booking

import (
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/shopspring/decimal"
)

// NewRoom builds an unoccupied room for the admin inventory.
func NewRoom(roomType models.RoomType, nightlyPrice decimal.Decimal) (models.Room, error) {
	if !roomType.Valid() {
		return models.Room{}, ErrUnknownRoomType
	}
	if nightlyPrice.IsNegative() {
		return models.Room{}, ErrInvalidRoomPrice
	}

	return models.Room{RoomType: roomType, NightlyPrice: nightlyPrice}, nil
}
