package notifier

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
)

// messageSender is the part of *discordgo.Session the notifier uses.
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordNotifier struct {
	session   messageSender
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	n := &DiscordNotifier{channelID: channelID}
	if session != nil {
		n.session = session
	}
	return n
}

func (n *DiscordNotifier) NotifyBooking(ctx context.Context, user models.User, booking models.Booking) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, bookingMessage(user, booking), discordgo.WithContext(ctx))
	return err
}

func bookingMessage(user models.User, booking models.Booking) string {
	tickets := fmt.Sprintf("%d child / %d adult", booking.ChildTickets, booking.AdultTickets)
	if booking.Educational {
		tickets += " (educational)"
	}

	hotel := "none"
	if booking.RoomID != nil && booking.HotelStart != nil && booking.HotelEnd != nil {
		hotel = fmt.Sprintf("%s room #%d, %s - %s",
			booking.RoomType,
			*booking.RoomID,
			booking.HotelStart.Format("2006-01-02"),
			booking.HotelEnd.Format("2006-01-02"),
		)
	}

	return fmt.Sprintf("🦒 **New Booking** `%s`\n**User:** %s\n**Zoo:** %s - %s\n**Tickets:** %s\n**Hotel:** %s\n**Total:** %s",
		booking.Reference,
		user.Username,
		booking.VisitStart.Format("2006-01-02"),
		booking.VisitEnd.Format("2006-01-02"),
		tickets,
		hotel,
		booking.TotalCost.StringFixed(2),
	)
}
