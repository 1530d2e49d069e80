package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/zoo-hotel-api/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, bookingHandler *BookingHandler, roomHandler *RoomHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Zoo & Hotel Booking API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	r.Get("/auth/discord/login", authHandler.HandleDiscordLogin)
	r.Get("/auth/discord/callback", authHandler.HandleDiscordCallback)
	huma.Post(api, "/auth/register", authHandler.HandleRegister)
	huma.Post(api, "/auth/login", authHandler.HandleLogin)

	// Protected routes
	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}, {"bearerAuth": {}}}
	}
	huma.Get(api, "/me", authHandler.HandleMe, secured)
	huma.Post(api, "/bookings", bookingHandler.HandleCreateBooking, secured)
	huma.Get(api, "/bookings", bookingHandler.HandleListBookings, secured)
	huma.Get(api, "/rooms", roomHandler.HandleListRooms, secured)
	huma.Post(api, "/admin/rooms", roomHandler.HandleCreateRoom, secured)
}
