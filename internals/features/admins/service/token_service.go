// internals/features/admins/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"checkinku_backend/internals/configs"
	"checkinku_backend/internals/features/admins/model"
	helper "checkinku_backend/internals/helpers"
)

// Sesi admin berumur 8 jam, sama dengan umur cookie-nya.
const AdminTokenTTL = 8 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}
	return secret, nil
}

// IssueAdminToken menerbitkan token sesi admin HS256.
func IssueAdminToken(admin model.AdminModel, now time.Time) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"typ":      "admin",
		"id":       admin.AdminID,
		"username": admin.AdminUsername,
		"role":     admin.AdminRole,
		"iat":      now.Unix(),
		"exp":      now.Add(AdminTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAdminToken dipakai /auth/check: decode tanpa middleware supaya
// kegagalan bisa dijawab 200 {authenticated:false}, bukan 401.
func ParseAdminToken(raw string) (jwt.MapClaims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || claims["typ"] != "admin" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

func SetAuthCookie(c *fiber.Ctx, token string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AuthCookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/",
		Expires:  now.Add(AdminTokenTTL),
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     helper.AuthCookieName,
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
	})
}
