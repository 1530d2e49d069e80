package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
)

func TestAllocate_FirstFit(t *testing.T) {
	ctx := context.Background()

	t.Run("EligibleCursorWins", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{
			room(1, models.RoomTypeDouble, 80, "2024-01-01"),
			room(2, models.RoomTypeDouble, 80, "2024-02-01"),
		}}

		got, err := Allocate(ctx, tx, models.RoomTypeDouble, day("2024-01-15"), day("2024-01-18"))
		if err != nil {
			t.Fatalf("Allocate returned error: %v", err)
		}
		if got.ID != 1 {
			t.Errorf("expected room 1, got %d", got.ID)
		}
		if !tx.rooms[0].AvailableFrom.Equal(day("2024-01-18")) {
			t.Errorf("expected cursor 2024-01-18, got %v", tx.rooms[0].AvailableFrom)
		}
		if !tx.rooms[1].AvailableFrom.Equal(day("2024-02-01")) {
			t.Errorf("room 2 cursor must be untouched, got %v", tx.rooms[1].AvailableFrom)
		}
	})

	t.Run("IneligibleFirstRoomSkipped", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{
			room(1, models.RoomTypeDouble, 80, "2024-02-01"),
			room(2, models.RoomTypeDouble, 80, "2024-01-01"),
		}}

		got, err := Allocate(ctx, tx, models.RoomTypeDouble, day("2024-01-15"), day("2024-01-18"))
		if err != nil {
			t.Fatalf("Allocate returned error: %v", err)
		}
		if got.ID != 2 {
			t.Errorf("expected room 2, got %d", got.ID)
		}
	})

	t.Run("FirstOfSeveralEligible", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{
			room(3, models.RoomTypeSingle, 50, ""),
			room(4, models.RoomTypeSingle, 40, ""),
		}}

		got, err := Allocate(ctx, tx, models.RoomTypeSingle, day("2024-01-15"), day("2024-01-16"))
		if err != nil {
			t.Fatalf("Allocate returned error: %v", err)
		}
		if got.ID != 3 {
			t.Errorf("expected room 3, got %d", got.ID)
		}
	})
}

func TestAllocate_Boundaries(t *testing.T) {
	ctx := context.Background()

	t.Run("SameDayTurnover", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{room(1, models.RoomTypeSuite, 200, "2024-01-15")}}

		if _, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-15"), day("2024-01-17")); err != nil {
			t.Fatalf("expected check-in on the cursor date to succeed, got %v", err)
		}
	})

	t.Run("OverlapRejected", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{room(1, models.RoomTypeSuite, 200, "")}}

		if _, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-10"), day("2024-01-15")); err != nil {
			t.Fatalf("first allocation failed: %v", err)
		}
		if _, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-14"), day("2024-01-16")); !errors.Is(err, ErrNoRoomAvailable) {
			t.Fatalf("expected ErrNoRoomAvailable, got %v", err)
		}
		if _, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-15"), day("2024-01-16")); err != nil {
			t.Fatalf("expected allocation on the previous departure day, got %v", err)
		}
	})

	t.Run("AllCursorsAfterStart", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{
			room(1, models.RoomTypeDouble, 80, "2024-01-01"),
			room(2, models.RoomTypeDouble, 80, "2024-02-01"),
		}}

		if _, err := Allocate(ctx, tx, models.RoomTypeDouble, day("2023-12-20"), day("2023-12-22")); !errors.Is(err, ErrNoRoomAvailable) {
			t.Fatalf("expected ErrNoRoomAvailable, got %v", err)
		}
	})

	t.Run("NoRoomsOfType", func(t *testing.T) {
		tx := &fakeTx{rooms: []models.Room{room(1, models.RoomTypeDouble, 80, "")}}

		if _, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-10"), day("2024-01-12")); !errors.Is(err, ErrRoomTypeUnavailable) {
			t.Fatalf("expected ErrRoomTypeUnavailable, got %v", err)
		}
	})

	t.Run("InventoryFailure", func(t *testing.T) {
		tx := &fakeTx{findErr: errors.New("disk on fire")}

		_, err := Allocate(ctx, tx, models.RoomTypeSuite, day("2024-01-10"), day("2024-01-12"))
		if err == nil || AsAbort(err) != nil {
			t.Fatalf("expected a non-abort storage error, got %v", err)
		}
	})
}

func TestNewRoom(t *testing.T) {
	r, err := NewRoom(models.RoomTypeDouble, decimalInt(120))
	if err != nil {
		t.Fatalf("NewRoom returned error: %v", err)
	}
	if r.AvailableFrom != nil {
		t.Errorf("new room must be unoccupied, got cursor %v", r.AvailableFrom)
	}
	if !r.FreeOn(day("1970-01-01")) {
		t.Error("new room must be free on any date")
	}

	if _, err := NewRoom(models.RoomTypeNone, decimalInt(10)); !errors.Is(err, ErrUnknownRoomType) {
		t.Errorf("expected ErrUnknownRoomType, got %v", err)
	}
	if _, err := NewRoom("penthouse", decimalInt(10)); !errors.Is(err, ErrUnknownRoomType) {
		t.Errorf("expected ErrUnknownRoomType, got %v", err)
	}
	if _, err := NewRoom(models.RoomTypeSingle, decimalInt(-1)); !errors.Is(err, ErrInvalidRoomPrice) {
		t.Errorf("expected ErrInvalidRoomPrice, got %v", err)
	}
}
