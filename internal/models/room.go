package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RoomType string

const (
	RoomTypeNone   RoomType = "none"
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeSuite  RoomType = "suite"
)

// Valid reports whether t names a bookable room type.
func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

type Room struct {
	gorm.Model
	RoomType     RoomType        `json:"room_type" gorm:"index"`
	NightlyPrice decimal.Decimal `json:"nightly_price" gorm:"type:decimal(12,2)"`
	// AvailableFrom is the first date a new stay may start on. Nil means
	// the room has never been booked.
	AvailableFrom *time.Time `json:"available_from"`
}

// FreeOn reports whether a stay starting on day can be placed in the room.
// A stay may start on the very day the previous one ends.
func (r Room) FreeOn(day time.Time) bool {
	return r.AvailableFrom == nil || !r.AvailableFrom.After(day)
}
