package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/checkins/dto"
	"checkinku_backend/internals/features/checkins/model"
	eventModel "checkinku_backend/internals/features/events/model"
	helper "checkinku_backend/internals/helpers"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

var validateCheckin = validator.New()

/* ==========================
   CHECK-IN
========================== */

// Checkin mencatat kehadiran attendee pada sebuah event. Duplikat pasangan
// aktif dijawab 400 — termasuk yang datang barengan: insert kedua kalah di
// partial unique index dan dipetakan ke respon yang sama.
func Checkin(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.CheckinRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCheckin.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	tokenUserID, ok := c.Locals(authMiddleware.LocUserID).(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if tokenUserID != input.UserID {
		return helper.JsonError(c, fiber.StatusForbidden, "Token does not match user")
	}

	eventID, err := uuid.Parse(input.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event_id")
	}

	// existence checks dulu supaya 404-nya jelas, constraint tetap jaring terakhir
	var userCount int64
	if err := db.Table("users").Where("user_id = ?", input.UserID).Count(&userCount).Error; err != nil {
		log.Printf("[ERROR] attendee lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-in failed")
	}
	if userCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendee not found")
	}

	var event eventModel.EventModel
	if err := db.First(&event, "event_id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] event lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-in failed")
	}

	var existing int64
	if err := db.Model(&model.CheckinModel{}).
		Where("checkin_user_id = ? AND checkin_event_id = ? AND checkin_is_valid", input.UserID, eventID).
		Count(&existing).Error; err != nil {
		log.Printf("[ERROR] checkin lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-in failed")
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Already checked in to this event")
	}

	checkin := model.CheckinModel{
		CheckinUserID:      input.UserID,
		CheckinEventID:     eventID,
		CheckinTime:        time.Now(),
		CheckinStatus:      model.CheckinStatusPresent,
		CheckinGeolocation: input.Geolocation,
		CheckinIsValid:     true,
	}
	if err := db.Create(&checkin).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// race dua request barengan: index uq_checkins_active_pair menang
			return helper.JsonError(c, fiber.StatusBadRequest, "Already checked in to this event")
		}
		log.Printf("[ERROR] create checkin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-in failed")
	}

	return helper.JsonOK(c, "Check-in successful", fiber.Map{
		"checkin": dto.ToCheckinDTO(checkin),
	})
}

/* ==========================
   CHECK-OUT
========================== */

// Checkout menutup record aktif dengan mengisi checkin_checkout_time sekali.
// Record tetap valid supaya check-in ulang tetap terblokir.
func Checkout(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.CheckoutRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCheckin.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	tokenUserID, ok := c.Locals(authMiddleware.LocUserID).(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if tokenUserID != input.UserID {
		return helper.JsonError(c, fiber.StatusForbidden, "Token does not match user")
	}

	eventID, err := uuid.Parse(input.EventID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event_id")
	}

	var checkin model.CheckinModel
	if err := db.Where("checkin_user_id = ? AND checkin_event_id = ? AND checkin_is_valid",
		input.UserID, eventID).First(&checkin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No active check-in for this event")
		}
		log.Printf("[ERROR] checkout lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-out failed")
	}

	if checkin.CheckinCheckoutTime != nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already checked out from this event")
	}

	now := time.Now()
	res := db.Model(&model.CheckinModel{}).
		Where("checkin_id = ? AND checkin_checkout_time IS NULL", checkin.CheckinID).
		Update("checkin_checkout_time", now)
	if res.Error != nil {
		log.Printf("[ERROR] checkout update: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Check-out failed")
	}
	if res.RowsAffected == 0 {
		// request checkout kembar: yang kedua kalah di guard IS NULL
		return helper.JsonError(c, fiber.StatusConflict, "Already checked out from this event")
	}

	checkin.CheckinCheckoutTime = &now
	return helper.JsonOK(c, "Check-out successful", fiber.Map{
		"checkin": dto.ToCheckinDTO(checkin),
	})
}
