package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gdg-garage/zoo-hotel-api/internal/auth"
	"github.com/gdg-garage/zoo-hotel-api/internal/booking"
	"github.com/gdg-garage/zoo-hotel-api/internal/config"
	"github.com/gdg-garage/zoo-hotel-api/internal/database"
	"github.com/gdg-garage/zoo-hotel-api/internal/handlers"
	"github.com/gdg-garage/zoo-hotel-api/internal/logging"
	"github.com/gdg-garage/zoo-hotel-api/internal/notifier"
	"github.com/gdg-garage/zoo-hotel-api/internal/queue"
	"github.com/gdg-garage/zoo-hotel-api/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Connect to Database
	db := database.Connect(cfg)
	bookingStore := store.New(db)

	pricing, err := booking.NewPricing(cfg.ChildTicketPrice, cfg.AdultTicketPrice, cfg.EducationalMultiplier)
	if err != nil {
		log.Fatalf("Invalid pricing configuration: %v", err)
	}

	// Initialize Notifiers
	var notifiers []booking.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			logger.WithError(err).Warn("Discord notifier not initialized")
		} else {
			notifiers = append(notifiers, notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID))
		}
	}
	if cfg.AMQPURL != "" {
		notifiers = append(notifiers, queue.NewPublisher(cfg.AMQPURL, cfg.BookingQueue))
	}

	bookingService := booking.NewService(
		bookingStore,
		pricing,
		booking.Ledger{Threshold: cfg.LoyaltyThreshold},
		logger,
		notifiers...,
	)

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db, auth.RolePolicy{})
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingStore, authHandler)
	roomHandler := handlers.NewRoomHandler(bookingStore, authHandler)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, bookingHandler, roomHandler)

	// Start Server
	logger.WithField("port", cfg.Port).Info("Starting server")
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		logger.WithError(err).Fatal("Failed to start server")
	}
}
