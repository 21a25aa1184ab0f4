package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/events/dto"
	"checkinku_backend/internals/features/events/model"
	helper "checkinku_backend/internals/helpers"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

var validateEvent = validator.New()

/* ==========================
   CREATE (+ QR dua fase)
========================== */

// CreateEvent menyimpan event lalu membuat QR asset-nya. Event yang sudah
// tersimpan tidak pernah di-rollback gara-gara QR gagal: respon 207 dengan
// warning, dan QR bisa dibuat ulang lewat endpoint regenerate.
func CreateEvent(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.CreateEventRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	adminID, ok := c.Locals(authMiddleware.LocAdminID).(uint)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var event model.EventModel
	if err := ApplyEventRequest(&event, input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	event.EventCreatedBy = adminID

	if err := db.Create(&event).Error; err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	qr, qrErr := GenerateEventQR(event.EventID.String())
	if qrErr != nil {
		log.Printf("⚠️ QR event %s gagal dibuat: %v", event.EventID, qrErr)
		return helper.JsonPartial(c, "Event created, QR code generation failed", fiber.Map{
			"event":   dto.ToEventDTO(event),
			"warning": "QR code could not be generated; retry via POST /events/:id/qrcode",
		})
	}

	event.EventQRCodeURL = &qr.URL
	event.EventQRMeta = qr.Meta
	if err := db.Model(&model.EventModel{}).
		Where("event_id = ?", event.EventID).
		Updates(map[string]interface{}{
			"event_qrcode_url": qr.URL,
			"event_qr_meta":    qr.Meta,
		}).Error; err != nil {
		log.Printf("[ERROR] persist event qr url: %v", err)
		return helper.JsonPartial(c, "Event created, QR code generation failed", fiber.Map{
			"event":   dto.ToEventDTO(event),
			"warning": "QR code could not be persisted; retry via POST /events/:id/qrcode",
		})
	}

	return helper.JsonCreated(c, "Event created successfully", fiber.Map{
		"event":     dto.ToEventDTO(event),
		"event_url": eventDeepLink(event.EventID.String()),
	})
}

/* ==========================
   REGENERATE QR
========================== */

// RegenerateEventQR membuat ulang QR asset sebuah event. Idempotent:
// dipanggil berulang menghasilkan asset dan URL yang sama.
func RegenerateEventQR(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	qr, err := GenerateEventQR(event.EventID.String())
	if err != nil {
		log.Printf("[ERROR] regenerate qr %s: %v", event.EventID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate QR code")
	}

	event.EventQRCodeURL = &qr.URL
	event.EventQRMeta = qr.Meta
	if err := db.Model(&model.EventModel{}).
		Where("event_id = ?", event.EventID).
		Updates(map[string]interface{}{
			"event_qrcode_url": qr.URL,
			"event_qr_meta":    qr.Meta,
		}).Error; err != nil {
		log.Printf("[ERROR] persist event qr url: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save QR code")
	}

	return helper.JsonOK(c, "QR code generated successfully", dto.ToEventDTO(*event))
}

/* ==========================
   LIST (dashboard admin)
========================== */

// GetEvents daftar semua event untuk dashboard plus jumlah check-in-nya,
// terbaru dulu.
func GetEvents(db *gorm.DB, c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := db.Model(&model.EventModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	var events []model.EventModel
	if err := db.Order("event_start_time DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	counts, err := checkinCountsByEvent(db)
	if err != nil {
		log.Printf("[ERROR] checkin counts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	items := make([]dto.EventListItemDTO, 0, len(events))
	for _, ev := range events {
		items = append(items, dto.EventListItemDTO{
			EventDTO:     dto.ToEventDTO(ev),
			CheckinCount: counts[ev.EventID.String()],
		})
	}

	pagination := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "ok", items, &pagination)
}

/* ==========================
   DETAIL (publik)
========================== */

// GetEvent detail satu event; dipakai halaman check-in publik, jadi tanpa guard.
func GetEvent(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}
	return helper.JsonOK(c, "ok", dto.ToEventDTO(*event))
}

/* ==========================
   LIST PUBLIK
========================== */

// GetPublicEvents daftar event yang belum berakhir, urut mulai terdekat.
func GetPublicEvents(db *gorm.DB, c *fiber.Ctx) error {
	var events []model.EventModel
	if err := db.Where("event_end_time >= ?", time.Now()).
		Order("event_start_time ASC").
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] list public events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "ok", dto.ToPublicEventDTOList(events))
}

/* ==========================
   UPDATE (full replace)
========================== */

func UpdateEvent(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	var input dto.UpdateEventRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&input); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	if err := ApplyEventRequest(event, dto.CreateEventRequest(input)); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := db.Save(event).Error; err != nil {
		log.Printf("[ERROR] update event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated successfully", dto.ToEventDTO(*event))
}

/* ==========================
   DELETE (guard check-in)
========================== */

// DeleteEvent menolak hapus kalau event sudah punya check-in; riwayat
// kehadiran tidak boleh yatim. QR asset ikut dibersihkan best-effort.
func DeleteEvent(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	n, err := countCheckins(db, event.EventID.String())
	if err != nil {
		log.Printf("[ERROR] count checkins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if n > 0 {
		return helper.JsonErrorWithData(c, fiber.StatusConflict,
			"Event has check-in records and cannot be deleted", fiber.Map{
				"checkin_count": n,
			})
	}

	if err := db.Delete(&model.EventModel{}, "event_id = ?", event.EventID).Error; err != nil {
		log.Printf("[ERROR] delete event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	DeleteEventQRAssets(event.EventID.String())

	return helper.JsonDeleted(c, "Event deleted successfully", fiber.Map{
		"event_id": event.EventID.String(),
	})
}

/* ==========================
   STATS
========================== */

// GetEventStats statistik kehadiran satu event.
func GetEventStats(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	total, err := countCheckins(db, event.EventID.String())
	if err != nil {
		log.Printf("[ERROR] count checkins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stats")
	}

	var stillIn int64
	if event.EventRequireCheckout {
		if err := db.Table("checkins").
			Where("checkin_event_id = ? AND checkin_checkout_time IS NULL", event.EventID.String()).
			Count(&stillIn).Error; err != nil {
			log.Printf("[ERROR] count active checkins: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load stats")
		}
	}

	stats := PartitionStats(total, stillIn, event.EventRequireCheckout)
	return helper.JsonOK(c, "ok", stats)
}

/* ==========================
   DAFTAR KEHADIRAN
========================== */

// GetEventCheckins daftar check-in satu event digabung data attendee,
// terbaru dulu, paginated.
func GetEventCheckins(db *gorm.DB, c *fiber.Ctx) error {
	event, err := findEventByID(db, c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		log.Printf("[ERROR] find event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load event")
	}

	p := helper.ResolvePaging(c, 20, 100)

	total, err := countCheckins(db, event.EventID.String())
	if err != nil {
		log.Printf("[ERROR] count checkins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load check-ins")
	}

	var items []dto.EventCheckinItemDTO
	if err := db.Table("checkins").
		Select(`checkins.checkin_id, users.user_id, users.user_name, users.user_phone,
			users.user_company, users.user_department,
			checkins.checkin_time, checkins.checkin_checkout_time,
			checkins.checkin_status, checkins.checkin_geolocation`).
		Joins("JOIN users ON users.user_id = checkins.checkin_user_id").
		Where("checkins.checkin_event_id = ?", event.EventID.String()).
		Order("checkins.checkin_time DESC").
		Offset(p.Offset).Limit(p.Limit).
		Scan(&items).Error; err != nil {
		log.Printf("[ERROR] list event checkins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load check-ins")
	}

	pagination := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "ok", items, &pagination)
}
