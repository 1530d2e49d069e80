package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
)

// Inventory is the room store seen by the allocator. FindRooms must return
// rooms in a stable order (ascending ID).
type Inventory interface {
	FindRooms(ctx context.Context, roomType models.RoomType) ([]models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
}

// Allocate picks the first room of roomType that is free on start and moves
// its cursor to end. Callers serialise calls per room type.
func Allocate(ctx context.Context, inv Inventory, roomType models.RoomType, start, end time.Time) (*models.Room, error) {
	rooms, err := inv.FindRooms(ctx, roomType)
	if err != nil {
		return nil, fmt.Errorf("find %s rooms: %w", roomType, err)
	}

	if len(rooms) == 0 {
		return nil, ErrRoomTypeUnavailable
	}

	start = Day(start)
	for i := range rooms {
		room := &rooms[i]
		if !room.FreeOn(start) {
			continue
		}

		until := Day(end)
		room.AvailableFrom = &until
		if err := inv.UpdateRoom(ctx, room); err != nil {
			return nil, fmt.Errorf("advance room %d cursor: %w", room.ID, err)
		}
		return room, nil
	}

	return nil, ErrNoRoomAvailable
}
