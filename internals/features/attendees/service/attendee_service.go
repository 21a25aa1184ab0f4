package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"checkinku_backend/internals/configs"
	"checkinku_backend/internals/features/attendees/dto"
	"checkinku_backend/internals/features/attendees/model"
	helper "checkinku_backend/internals/helpers"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

var validateAttendee = validator.New()

// Token attendee sengaja pendek: cukup untuk satu sesi check-in.
const AttendeeTokenTTL = 2 * time.Hour

/* ==========================
   REGISTER
========================== */

// Register membuat attendee baru untuk sebuah identitas eksternal.
// Identitas yang sudah terdaftar ditolak 409; record pertama tidak
// pernah di-overwrite.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterAttendeeRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendee.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	var existing model.AttendeeModel
	err := db.Where("user_external_id = ?", input.ExternalID).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "This account is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] attendee lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	attendee := model.AttendeeModel{
		UserExternalID: input.ExternalID,
		UserName:       input.Name,
		UserPhone:      input.Phone,
		UserCompany:    input.Company,
		UserDepartment: input.Department,
	}
	if err := db.Create(&attendee).Error; err != nil {
		// unique index users.user_external_id menang atas race register ganda
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "This account is already registered")
		}
		log.Printf("[ERROR] create attendee: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	token, err := IssueAttendeeToken(attendee, time.Now().UTC())
	if err != nil {
		log.Printf("[ERROR] issue attendee token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Registration successful", fiber.Map{
		"user":           dto.ToAttendeeDTO(attendee),
		"attendee_token": token,
	})
}

/* ==========================
   SOCIAL LOGIN
========================== */

// LoginSocial memverifikasi ID token dari provider social login dan
// me-resolve identitas eksternalnya ke attendee. Identitas yang valid
// tapi belum terdaftar dijawab 404 plus external_id supaya klien bisa
// lanjut ke form registrasi.
func LoginSocial(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.SocialLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID token")
	}
	externalID := claimSet.Sub

	var attendee model.AttendeeModel
	if err := db.Where("user_external_id = ?", externalID).First(&attendee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonErrorWithData(c, fiber.StatusNotFound, "Not registered yet", fiber.Map{
				"external_id": externalID,
			})
		}
		log.Printf("[ERROR] social login lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := IssueAttendeeToken(attendee, time.Now().UTC())
	if err != nil {
		log.Printf("[ERROR] issue attendee token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"user":           dto.ToAttendeeDTO(attendee),
		"attendee_token": token,
	})
}

/* ==========================
   ME
========================== */

// Me mengembalikan profil attendee dari token — pengganti probe
// berbasis id polos di desain lama.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, ok := c.Locals(authMiddleware.LocUserID).(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var attendee model.AttendeeModel
	if err := db.First(&attendee, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee not found")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"user": dto.ToAttendeeDTO(attendee),
	})
}

/* ==========================
   TOKEN
========================== */

func IssueAttendeeToken(attendee model.AttendeeModel, now time.Time) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{
		"typ":         "attendee",
		"id":          attendee.UserID,
		"external_id": attendee.UserExternalID,
		"iat":         now.Unix(),
		"exp":         now.Add(AttendeeTokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
