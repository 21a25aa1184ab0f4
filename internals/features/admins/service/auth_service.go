package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/admins/dto"
	"checkinku_backend/internals/features/admins/model"
	helper "checkinku_backend/internals/helpers"
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Username == "" || input.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	var admin model.AdminModel
	err := db.Where("admin_username = ?", input.Username).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama dengan password salah, jangan bocorkan username valid
			return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect username or password")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := CheckPasswordHash(admin.AdminPassword, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect username or password")
	}

	now := nowUTC()
	token, err := IssueAdminToken(admin, now)
	if err != nil {
		log.Printf("[ERROR] issue admin token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	SetAuthCookie(c, token, now)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"admin":        dto.ToAdminDTO(admin),
		"access_token": token,
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(c *fiber.Ctx) error {
	ClearAuthCookie(c)
	return helper.JsonOK(c, "Logged out", nil)
}

/* ==========================
   CHECK
========================== */

// Check selalu menjawab 200 dengan flag authenticated — dipakai polling
// klien, jadi token hilang/expired bukan kondisi error di endpoint ini.
func Check(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"authenticated": false,
			"message":       "Not logged in",
		})
	}

	claims, err := ParseAdminToken(raw)
	if err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"authenticated": false,
			"message":       "Session invalid or expired",
		})
	}

	id, _ := claims["id"].(float64)
	var admin model.AdminModel
	if err := db.First(&admin, "admin_id = ?", uint(id)).Error; err != nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"authenticated": false,
			"message":       "Admin account not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"authenticated": true,
		"admin":         dto.ToAdminDTO(admin),
		"role":          admin.AdminRole,
	})
}
