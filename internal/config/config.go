package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string   `mapstructure:"PORT"`
	DatabasePath                  string   `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string   `mapstructure:"JWT_SECRET"`
	LogLevel                      string   `mapstructure:"LOG_LEVEL"`
	ChildTicketPrice              string   `mapstructure:"CHILD_TICKET_PRICE"`
	AdultTicketPrice              string   `mapstructure:"ADULT_TICKET_PRICE"`
	EducationalMultiplier         string   `mapstructure:"EDUCATIONAL_MULTIPLIER"`
	LoyaltyThreshold              int      `mapstructure:"LOYALTY_THRESHOLD"`
	BcryptCost                    int      `mapstructure:"BCRYPT_COST"`
	AdminEmails                   []string `mapstructure:"ADMIN_EMAILS"`
	DiscordClientID               string   `mapstructure:"DISCORD_CLIENT_ID"`
	DiscordClientSecret           string   `mapstructure:"DISCORD_CLIENT_SECRET"`
	DiscordRedirectURL            string   `mapstructure:"DISCORD_REDIRECT_URL"`
	DiscordBotToken               string   `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string   `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	AMQPURL                       string   `mapstructure:"AMQP_URL"`
	BookingQueue                  string   `mapstructure:"BOOKING_QUEUE"`
}

func LoadConfig() *Config {
	// A missing .env is fine; the process environment still applies.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_PATH", "zoo.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CHILD_TICKET_PRICE", "10")
	viper.SetDefault("ADULT_TICKET_PRICE", "20")
	viper.SetDefault("EDUCATIONAL_MULTIPLIER", "0.9")
	viper.SetDefault("LOYALTY_THRESHOLD", 10)
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("ADMIN_EMAILS", []string{})
	viper.SetDefault("DISCORD_REDIRECT_URL", "http://127.0.0.1:8080/auth/discord/callback")
	viper.SetDefault("BOOKING_QUEUE", "booking.committed")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("ADMIN_EMAILS")
	viper.BindEnv("DISCORD_CLIENT_ID")
	viper.BindEnv("DISCORD_CLIENT_SECRET")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")
	viper.BindEnv("AMQP_URL")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}

// IsAdminEmail reports whether email is listed in ADMIN_EMAILS, ignoring case
// and surrounding spaces.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	for _, e := range c.AdminEmails {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
