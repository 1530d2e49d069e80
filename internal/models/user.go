package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string
	Email         *string `gorm:"uniqueIndex"`
	PasswordHash  string  `json:"-"`
	DiscordID     *string `gorm:"uniqueIndex"`
	Avatar        string
	LoyaltyPoints int
	IsAdmin       bool
}

// EmailAddress returns the stored email, or "" when the account has none.
func (u User) EmailAddress() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
