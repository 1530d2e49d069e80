package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" doc:"Display name"`
		Email    string `json:"email" format:"email" doc:"Login email"`
		Password string `json:"password" minLength:"8" doc:"Password"`
	}
}

type UserResponse struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	LoyaltyPoints int    `json:"loyalty_points"`
	IsAdmin       bool   `json:"is_admin"`
}

func userResponse(u models.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.EmailAddress(),
		Avatar:        u.Avatar,
		LoyaltyPoints: u.LoyaltyPoints,
		IsAdmin:       u.IsAdmin,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserOutput struct {
	Body UserResponse
}

func (h *AuthHandler) HandleRegister(ctx context.Context, input *RegisterInput) (*UserOutput, error) {
	email := normalizeEmail(input.Body.Email)
	if email == "" || input.Body.Password == "" {
		return nil, huma.Error400BadRequest("Email and password are required")
	}

	var existing int64
	if err := h.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, huma.Error500InternalServerError("Database error")
	}
	if existing > 0 {
		return nil, huma.Error409Conflict("Email already registered")
	}

	hash, err := HashPassword(input.Body.Password, h.cfg.BcryptCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := models.User{
		Username:     strings.TrimSpace(input.Body.Username),
		Email:        &email,
		PasswordHash: hash,
		IsAdmin:      h.cfg.IsAdminEmail(email),
	}
	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user: " + err.Error())
	}

	return &UserOutput{Body: userResponse(user)}, nil
}

type LoginInput struct {
	Body struct {
		Email    string `json:"email" doc:"Login email"`
		Password string `json:"password" doc:"Password"`
	}
}

type LoginOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	email := normalizeEmail(input.Body.Email)

	var user models.User
	if err := h.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error401Unauthorized("Invalid email or password")
		}
		return nil, huma.Error500InternalServerError("Database error")
	}

	if user.PasswordHash == "" || !VerifyPassword(user.PasswordHash, input.Body.Password) {
		return nil, huma.Error401Unauthorized("Invalid email or password")
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginOutput{SetCookie: sessionCookie(token)}
	res.Body.Token = token
	res.Body.User = userResponse(user)
	return res, nil
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *AuthInput) (*UserOutput, error) {
	userID, err := h.Authorize(ctx, *input)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := h.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	return &UserOutput{Body: userResponse(user)}, nil
}
