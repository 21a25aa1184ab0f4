package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "checkinku_backend/internals/features/admins/route"
	attendeeRoute "checkinku_backend/internals/features/attendees/route"
	checkinRoute "checkinku_backend/internals/features/checkins/route"
	eventRoute "checkinku_backend/internals/features/events/route"
	fileRoute "checkinku_backend/internals/features/files/route"
)

// SetupRoutes mendaftarkan semua route aplikasi.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	adminRoute.AuthRoutes(app, db)
	adminRoute.AdminRoutes(app, db)
	attendeeRoute.AttendeeRoutes(app, db)
	eventRoute.EventRoutes(app, db)
	checkinRoute.CheckinRoutes(app, db)
	fileRoute.FileRoutes(app)
}
