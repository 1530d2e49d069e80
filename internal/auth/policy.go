package auth

import "github.com/gdg-garage/zoo-hotel-api/internal/models"

type Capability string

const (
	CapCreateBooking Capability = "bookings:create"
	CapManageRooms   Capability = "rooms:manage"
)

// Policy decides which capabilities a user holds.
type Policy interface {
	Allows(user models.User, c Capability) bool
}

// RolePolicy lets every user book and only admins manage rooms.
type RolePolicy struct{}

func (RolePolicy) Allows(user models.User, c Capability) bool {
	switch c {
	case CapCreateBooking:
		return true
	case CapManageRooms:
		return user.IsAdmin
	}
	return false
}
