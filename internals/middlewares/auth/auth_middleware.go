// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "checkinku_backend/internals/helpers"
)

// Locals keys yang di-hydrate oleh guard.
const (
	LocAdminID       = "admin_id"
	LocAdminUsername = "admin_username"
	LocAdminRole     = "admin_role"
	LocUserID        = "user_id"
	LocExternalID    = "user_external_id"
)

// Token "typ" claim membedakan sesi admin dari token attendee.
const (
	TokenTypeAdmin    = "admin"
	TokenTypeAttendee = "attendee"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie auth_token jika tidak ada Bearer
}

// AuthJWT adalah guard tunggal untuk route admin: decode token sekali,
// validasi signature + exp + typ, lalu simpan identitas ke Locals.
// Handler di belakangnya tinggal baca admin_id / admin_role.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		claims, err := parseToken(c, secret, o.AllowCookieFallback)
		if err != nil {
			return err
		}
		if strClaim(claims, "typ") != TokenTypeAdmin {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
		}

		id, ok := numClaim(claims, "id")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals(LocAdminID, uint(id))
		c.Locals(LocAdminUsername, strClaim(claims, "username"))
		c.Locals(LocAdminRole, strClaim(claims, "role"))

		return c.Next()
	}
}

// AttendeeJWT guard untuk flow check-in: token pendek yang diterbitkan
// saat attendee login/registrasi. Identitas attendee diambil dari token,
// bukan dari id polos di body.
func AttendeeJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AttendeeJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		claims, err := parseToken(c, secret, o.AllowCookieFallback)
		if err != nil {
			return err
		}
		if strClaim(claims, "typ") != TokenTypeAttendee {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
		}

		id, ok := numClaim(claims, "id")
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals(LocUserID, uint(id))
		c.Locals(LocExternalID, strClaim(claims, "external_id"))

		return c.Next()
	}
}

func parseToken(c *fiber.Ctx, secret string, cookieFallback bool) (jwt.MapClaims, error) {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	} else if cookieFallback {
		raw = strings.TrimSpace(c.Cookies(helper.AuthCookieName))
	}
	if raw == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
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
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func numClaim(claims jwt.MapClaims, key string) (float64, bool) {
	v, ok := claims[key].(float64)
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}
