// Package store implements booking.Store on top of gorm.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdg-garage/zoo-hotel-api/internal/booking"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction runs fn inside a database transaction. Any error returned by
// fn rolls back every write, including room cursor updates.
func (s *Store) Transaction(ctx context.Context, fn func(tx booking.Tx) error) error {
	return s.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		return fn(&txStore{db: db})
	})
}

// Rooms lists the whole inventory, optionally filtered by type.
func (s *Store) Rooms(ctx context.Context, roomType models.RoomType) ([]models.Room, error) {
	q := s.db.WithContext(ctx).Order("id asc")
	if roomType != "" {
		q = q.Where("room_type = ?", roomType)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *Store) CreateRoom(ctx context.Context, room *models.Room) error {
	if err := s.db.WithContext(ctx).Create(room).Error; err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// Bookings returns the user's bookings, newest first.
func (s *Store) Bookings(ctx context.Context, userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

type txStore struct {
	db *gorm.DB
}

// FindRooms locks the candidate rows where the database supports
// SELECT ... FOR UPDATE; SQLite ignores the clause and serialises writers.
func (t *txStore) FindRooms(ctx context.Context, roomType models.RoomType) ([]models.Room, error) {
	var rooms []models.Room
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("room_type = ?", roomType).
		Order("id asc").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (t *txStore) UpdateRoom(ctx context.Context, room *models.Room) error {
	return t.db.WithContext(ctx).
		Model(room).
		Update("available_from", room.AvailableFrom).Error
}

func (t *txStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := t.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (t *txStore) SaveBooking(ctx context.Context, record *models.Booking) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error
}

func (t *txStore) UpdateUser(ctx context.Context, user *models.User) error {
	return t.db.WithContext(ctx).
		Model(user).
		Update("loyalty_points", user.LoyaltyPoints).Error
}
