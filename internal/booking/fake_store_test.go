package booking

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/sirupsen/logrus"
)

// fakeStore stages every transaction on copies and only publishes them when
// fn succeeds, like a real database would.
type fakeStore struct {
	rooms    []models.Room
	users    map[uint]models.User
	bookings []models.Booking

	transactions int
	saveErr      error
}

func newFakeStore(rooms ...models.Room) *fakeStore {
	return &fakeStore{
		rooms: rooms,
		users: map[uint]models.User{1: userWithPoints(1, 0)},
	}
}

func (f *fakeStore) Transaction(ctx context.Context, fn func(tx Tx) error) error {
	f.transactions++

	tx := &fakeTx{
		rooms:   append([]models.Room(nil), f.rooms...),
		users:   make(map[uint]models.User, len(f.users)),
		saveErr: f.saveErr,
	}
	for id, u := range f.users {
		tx.users[id] = u
	}

	if err := fn(tx); err != nil {
		return err
	}

	f.rooms = tx.rooms
	f.users = tx.users
	f.bookings = append(f.bookings, tx.bookings...)
	return nil
}

type fakeTx struct {
	rooms    []models.Room
	users    map[uint]models.User
	bookings []models.Booking
	saveErr  error

	findErr   error
	updateErr error
}

func (t *fakeTx) FindRooms(ctx context.Context, roomType models.RoomType) ([]models.Room, error) {
	if t.findErr != nil {
		return nil, t.findErr
	}
	var out []models.Room
	for _, r := range t.rooms {
		if r.RoomType == roomType {
			out = append(out, r)
		}
	}
	return out, nil
}

func (t *fakeTx) UpdateRoom(ctx context.Context, room *models.Room) error {
	if t.updateErr != nil {
		return t.updateErr
	}
	for i := range t.rooms {
		if t.rooms[i].ID == room.ID {
			t.rooms[i] = *room
			return nil
		}
	}
	return errors.New("room not found")
}

func (t *fakeTx) GetUser(ctx context.Context, id uint) (*models.User, error) {
	u, ok := t.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (t *fakeTx) SaveBooking(ctx context.Context, booking *models.Booking) error {
	if t.saveErr != nil {
		return t.saveErr
	}
	booking.ID = uint(len(t.bookings) + 1)
	t.bookings = append(t.bookings, *booking)
	return nil
}

func (t *fakeTx) UpdateUser(ctx context.Context, user *models.User) error {
	t.users[user.ID] = *user
	return nil
}

type recordingNotifier struct {
	calls []models.Booking
	err   error
}

func (n *recordingNotifier) NotifyBooking(ctx context.Context, user models.User, booking models.Booking) error {
	n.calls = append(n.calls, booking)
	return n.err
}

func userWithPoints(id uint, points int) models.User {
	u := models.User{LoyaltyPoints: points}
	u.ID = id
	return u
}

func room(id uint, roomType models.RoomType, price int64, availableFrom string) models.Room {
	r := models.Room{RoomType: roomType, NightlyPrice: decimalInt(price)}
	r.ID = id
	if availableFrom != "" {
		d := day(availableFrom)
		r.AvailableFrom = &d
	}
	return r
}

func day(s string) time.Time {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
