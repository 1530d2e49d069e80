package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VisitFields struct {
	VisitStart   time.Time `json:"visit_start"`
	VisitEnd     time.Time `json:"visit_end"`
	ChildTickets int       `json:"child_tickets"`
	AdultTickets int       `json:"adult_tickets"`
	Educational  bool      `json:"educational"`
}

type Booking struct {
	gorm.Model
	Reference   string `json:"reference" gorm:"uniqueIndex"`
	UserID      uint   `json:"user_id" gorm:"index"`
	User        User   `json:"-" gorm:"foreignKey:UserID"`
	VisitFields `gorm:"embedded"`
	RoomID      *uint           `json:"room_id"`
	Room        *Room           `json:"-" gorm:"foreignKey:RoomID"`
	RoomType    RoomType        `json:"room_type"`
	HotelStart  *time.Time      `json:"hotel_start"`
	HotelEnd    *time.Time      `json:"hotel_end"`
	TotalCost   decimal.Decimal `json:"total_cost" gorm:"type:decimal(12,2)"`
}
