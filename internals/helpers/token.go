package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const AuthCookieName = "auth_token"

// GetRawAccessToken ambil token dari Authorization: Bearer xxx,
// fallback ke cookie auth_token (sesi admin berbasis cookie).
func GetRawAccessToken(c *fiber.Ctx) string {
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return strings.TrimSpace(authz[7:])
	}
	return strings.TrimSpace(c.Cookies(AuthCookieName))
}
