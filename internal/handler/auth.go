package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gicdev/cinema-booking/internal/utils"
)

// AuthHandler issues admin access tokens.  Booking is anonymous, so
// authentication exists only to protect the movie setup and reset
// endpoints.  The admin password is verified against a bcrypt hash
// supplied via configuration.
type AuthHandler struct {
	JWTSecret     string // secret used to sign access tokens
	AccessTTLMin  int    // token lifetime in minutes
	AdminPassHash string // bcrypt hash of the admin password
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(jwtSecret string, accessTTLMin int, adminPassHash string) *AuthHandler {
	return &AuthHandler{
		JWTSecret:     jwtSecret,
		AccessTTLMin:  accessTTLMin,
		AdminPassHash: adminPassHash,
	}
}

// Login handles POST /v1/auth/login.  The request body must contain a
// JSON object with a "password" field.  On success it returns a signed
// access token with the ADMIN role and its expiry.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}
	if !utils.VerifyPassword(h.AdminPassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAccessToken(h.JWTSecret, "admin", "ADMIN", h.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": tok.Token,
		"expires_at":   tok.Exp.Format(time.RFC3339),
	})
}
