// Package queue publishes committed bookings to RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// BookingCommittedEvent is published once per committed booking.
type BookingCommittedEvent struct {
	Reference     string  `json:"reference"`
	UserID        uint    `json:"user_id"`
	VisitStart    string  `json:"visit_start"`
	VisitEnd      string  `json:"visit_end"`
	ChildTickets  int     `json:"child_tickets"`
	AdultTickets  int     `json:"adult_tickets"`
	Educational   bool    `json:"educational"`
	RoomID        *uint   `json:"room_id,omitempty"`
	RoomType      string  `json:"room_type"`
	HotelStart    *string `json:"hotel_start,omitempty"`
	HotelEnd      *string `json:"hotel_end,omitempty"`
	TotalCost     string  `json:"total_cost"`
	LoyaltyPoints int     `json:"loyalty_points"`
	CommittedAt   string  `json:"committed_at"`
}

func NewBookingCommittedEvent(user models.User, booking models.Booking) BookingCommittedEvent {
	ev := BookingCommittedEvent{
		Reference:     booking.Reference,
		UserID:        booking.UserID,
		VisitStart:    booking.VisitStart.Format("2006-01-02"),
		VisitEnd:      booking.VisitEnd.Format("2006-01-02"),
		ChildTickets:  booking.ChildTickets,
		AdultTickets:  booking.AdultTickets,
		Educational:   booking.Educational,
		RoomID:        booking.RoomID,
		RoomType:      string(booking.RoomType),
		TotalCost:     booking.TotalCost.StringFixed(2),
		LoyaltyPoints: user.LoyaltyPoints,
		CommittedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
	}
	if booking.HotelStart != nil {
		s := booking.HotelStart.Format("2006-01-02")
		ev.HotelStart = &s
	}
	if booking.HotelEnd != nil {
		s := booking.HotelEnd.Format("2006-01-02")
		ev.HotelEnd = &s
	}
	return ev
}

// Publisher sends events to a durable queue. It dials per message, so a
// broker outage only costs the notification.
type Publisher struct {
	url   string
	queue string
}

func NewPublisher(url, queue string) *Publisher {
	return &Publisher{url: url, queue: queue}
}

func (p *Publisher) NotifyBooking(ctx context.Context, user models.User, booking models.Booking) error {
	return p.Publish(ctx, NewBookingCommittedEvent(user, booking))
}

func (p *Publisher) Publish(ctx context.Context, event BookingCommittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.Reference,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}
