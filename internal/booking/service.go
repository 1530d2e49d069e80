package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Tx is the store as seen from inside one booking transaction.
type Tx interface {
	Inventory
	GetUser(ctx context.Context, id uint) (*models.User, error)
	SaveBooking(ctx context.Context, booking *models.Booking) error
	UpdateUser(ctx context.Context, user *models.User) error
}

// Store runs fn atomically: either every write made through tx is kept or
// none is.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Tx) error) error
}

type Notifier interface {
	NotifyBooking(ctx context.Context, user models.User, booking models.Booking) error
}

type Service struct {
	store     Store
	pricing   Pricing
	ledger    Ledger
	notifiers []Notifier
	log       *logrus.Logger

	newReference func() string

	mu        sync.Mutex
	roomLocks map[models.RoomType]*sync.Mutex
}

func NewService(store Store, pricing Pricing, ledger Ledger, log *logrus.Logger, notifiers ...Notifier) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Service{
		store:        store,
		pricing:      pricing,
		ledger:       ledger,
		notifiers:    notifiers,
		log:          log,
		newReference: uuid.NewString,
		roomLocks:    make(map[models.RoomType]*sync.Mutex),
	}
}

func (s *Service) roomLock(roomType models.RoomType) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.roomLocks[roomType]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomType] = lock
	}
	return lock
}

// Book validates, allocates, prices and stores one booking. Domain failures
// come back as an Aborted outcome together with the matching *AbortError.
func (s *Service) Book(ctx context.Context, req Request) (Outcome, error) {
	req.normalize()

	entry := s.log.WithFields(logrus.Fields{
		"user_id":     req.UserID,
		"visit_start": FormatDay(req.Visit.Start),
		"visit_end":   FormatDay(req.Visit.End),
	})
	if req.Hotel != nil {
		entry = entry.WithField("room_type", req.Hotel.RoomType)
	}

	s.transition(entry, StateValidating)
	if err := Validate(req.Visit, req.Hotel); err != nil {
		return s.abort(entry, err)
	}

	record, user, err := s.run(ctx, entry, req)
	if err != nil {
		return s.abort(entry, err)
	}

	s.transition(entry.WithField("reference", record.Reference), StateCommitted)
	s.notify(ctx, entry, *user, *record)

	return Outcome{
		State:         StateCommitted,
		TotalCost:     record.TotalCost,
		Booking:       record,
		LoyaltyPoints: user.LoyaltyPoints,
	}, nil
}

// run holds the room-type lock for the whole transaction so that reading the
// candidate rooms and advancing a cursor cannot interleave with another
// booking of the same type.
func (s *Service) run(ctx context.Context, entry *logrus.Entry, req Request) (*models.Booking, *models.User, error) {
	if req.Hotel != nil {
		lock := s.roomLock(req.Hotel.RoomType)
		lock.Lock()
		defer lock.Unlock()
	}

	var (
		record *models.Booking
		user   *models.User
	)
	err := s.store.Transaction(ctx, func(tx Tx) error {
		var err error
		record, user, err = s.commit(ctx, tx, entry, req)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return record, user, nil
}

func (s *Service) commit(ctx context.Context, tx Tx, entry *logrus.Entry, req Request) (*models.Booking, *models.User, error) {
	record := &models.Booking{
		Reference: s.newReference(),
		UserID:    req.UserID,
		VisitFields: models.VisitFields{
			VisitStart:   req.Visit.Start,
			VisitEnd:     req.Visit.End,
			ChildTickets: req.Visit.ChildTickets,
			AdultTickets: req.Visit.AdultTickets,
			Educational:  req.Visit.Educational,
		},
		RoomType: models.RoomTypeNone,
	}

	quote := Quote{
		ChildTickets: req.Visit.ChildTickets,
		AdultTickets: req.Visit.AdultTickets,
		VisitNights:  VisitNights(req.Visit.Start, req.Visit.End),
		Educational:  req.Visit.Educational,
	}

	if req.Hotel != nil {
		s.transition(entry, StateAllocatingRoom)
		room, err := Allocate(ctx, tx, req.Hotel.RoomType, req.Hotel.Start, req.Hotel.End)
		if err != nil {
			return nil, nil, err
		}

		hotelStart, hotelEnd := req.Hotel.Start, req.Hotel.End
		record.RoomID = &room.ID
		record.RoomType = room.RoomType
		record.HotelStart = &hotelStart
		record.HotelEnd = &hotelEnd

		quote.RoomNightlyPrice = room.NightlyPrice
		quote.HotelNights = HotelNights(hotelStart, hotelEnd)
	}

	s.transition(entry, StatePricing)
	total, err := s.pricing.Price(quote)
	if err != nil {
		entry.WithError(err).Error("Pricing rejected a validated booking")
		return nil, nil, err
	}
	record.TotalCost = total

	s.transition(entry, StatePersisting)
	if err := tx.SaveBooking(ctx, record); err != nil {
		return nil, nil, fmt.Errorf("save booking: %w", err)
	}

	s.transition(entry, StateAwardingLoyalty)
	user, err := tx.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("load user %d: %w", req.UserID, err)
	}
	s.ledger.Award(user)
	if err := tx.UpdateUser(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("update loyalty points: %w", err)
	}

	return record, user, nil
}

func (s *Service) abort(entry *logrus.Entry, err error) (Outcome, error) {
	if abortErr := AsAbort(err); abortErr != nil {
		entry.WithField("reason", abortErr.Reason).Info("Booking aborted")
		return aborted(abortErr.Reason), err
	}

	entry.WithError(err).Error("Booking commit failed")
	return aborted(ReasonFailedCommit), fmt.Errorf("commit booking: %w", err)
}

func (s *Service) transition(entry *logrus.Entry, state State) {
	entry.WithField("state", state).Debug("Booking state")
}

// notify runs after commit; a failed notification never undoes a booking.
func (s *Service) notify(ctx context.Context, entry *logrus.Entry, user models.User, record models.Booking) {
	for _, n := range s.notifiers {
		if n == nil {
			continue
		}
		if err := n.NotifyBooking(ctx, user, record); err != nil {
			entry.WithError(err).Warn("Failed to send booking notification")
		}
	}
}
