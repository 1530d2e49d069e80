package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/zoo-hotel-api/internal/config"
	"github.com/gdg-garage/zoo-hotel-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	DiscordAuthorizeEndpoint = "https://discord.com/api/oauth2/authorize"
	DiscordTokenEndpoint     = "https://discord.com/api/oauth2/token"
	DiscordUserAPI           = "https://discord.com/api/users/@me"

	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour

	StateCookieName = "oauth_state"
	StateDuration   = 10 * time.Minute
)

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
	policy      Policy
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB, policy Policy) *AuthHandler {
	if policy == nil {
		policy = RolePolicy{}
	}

	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.DiscordClientID,
			ClientSecret: cfg.DiscordClientSecret,
			RedirectURL:  cfg.DiscordRedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  DiscordAuthorizeEndpoint,
				TokenURL: DiscordTokenEndpoint,
			},
		},
		db:     db,
		cfg:    cfg,
		policy: policy,
	}
}

// AuthInput is embedded in every protected operation's input. The token is
// read from the auth_token cookie or a bearer Authorization header.
type AuthInput struct {
	Cookie        string `header:"Cookie" doc:"Session cookie (auth_token)"`
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

func (in AuthInput) token() string {
	if bearer, ok := strings.CutPrefix(in.Authorization, "Bearer "); ok {
		return strings.TrimSpace(bearer)
	}

	if in.Cookie == "" {
		return ""
	}
	r := http.Request{Header: http.Header{"Cookie": {in.Cookie}}}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// ParseToken verifies tokenString and returns the user it was issued for.
func (h *AuthHandler) ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok || userIDFloat <= 0 {
		return 0, errors.New("invalid token claims")
	}

	return uint(userIDFloat), nil
}

// Authorize resolves the calling user or fails with 401.
func (h *AuthHandler) Authorize(ctx context.Context, input AuthInput) (uint, error) {
	tokenString := input.token()
	if tokenString == "" {
		return 0, huma.Error401Unauthorized("Unauthorized: No token found")
	}

	userID, err := h.ParseToken(tokenString)
	if err != nil {
		return 0, huma.Error401Unauthorized("Unauthorized: Invalid token")
	}

	return userID, nil
}

// Require loads the user and checks the policy grants capability c.
func (h *AuthHandler) Require(ctx context.Context, userID uint, c Capability) (*models.User, error) {
	var user models.User
	if err := h.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("User not found")
		}
		return nil, huma.Error500InternalServerError("Database error")
	}

	if !h.policy.Allows(user, c) {
		return nil, huma.Error403Forbidden(fmt.Sprintf("Access denied: missing %s capability", c))
	}

	return &user, nil
}

func sessionCookie(token string) http.Cookie {
	return http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	}
}

func stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     StateCookieName,
		Value:    value,
		MaxAge:   maxAge,
		HttpOnly: true,
		Path:     "/auth/discord",
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) HandleDiscordLogin(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, stateCookie(state, int(StateDuration.Seconds())))

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) HandleDiscordCallback(w http.ResponseWriter, r *http.Request) {
	// The state must round-trip through the browser that started the login.
	expected, err := r.Cookie(StateCookieName)
	if err != nil || expected.Value == "" || r.URL.Query().Get("state") != expected.Value {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}
	http.SetCookie(w, stateCookie("", -1))

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)

	resp, err := client.Get(DiscordUserAPI)
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var discordUser struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Avatar   string `json:"avatar"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&discordUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	user, err := h.upsertDiscordUser(discordUser.ID, discordUser.Username, discordUser.Email, discordUser.Avatar)
	if err != nil {
		http.Error(w, "Failed to save user", http.StatusInternalServerError)
		return
	}

	jwtToken, err := h.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	cookie := sessionCookie(jwtToken)
	http.SetCookie(w, &cookie)

	w.Write([]byte(fmt.Sprintf("Welcome %s! You are logged in.", user.Username)))
}

// upsertDiscordUser links a Discord identity to an existing account with the
// same email, or creates a new one. Discord may withhold the email; such
// accounts are stored without one.
func (h *AuthHandler) upsertDiscordUser(discordID, username, email, avatar string) (*models.User, error) {
	email = normalizeEmail(email)

	var user models.User
	err := h.db.Where("discord_id = ?", discordID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && email != "" {
		err = h.db.Where("email = ?", email).First(&user).Error
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if user.ID == 0 {
		user.IsAdmin = h.cfg.IsAdminEmail(email)
	}
	user.DiscordID = &discordID
	user.Username = username
	if email != "" {
		user.Email = &email
	}
	user.Avatar = avatar

	if err := h.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
