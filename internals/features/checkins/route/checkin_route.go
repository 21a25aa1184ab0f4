package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/configs"
	checkinController "checkinku_backend/internals/features/checkins/controller"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

// ✅ Check-in & check-out, keduanya di belakang token attendee.
func CheckinRoutes(app *fiber.App, db *gorm.DB) {
	checkinCtrl := checkinController.NewCheckinController(db)

	attendeeGuard := authMiddleware.AttendeeJWT(authMiddleware.AuthJWTOpts{
		Secret: configs.JWTSecret,
	})

	checkins := app.Group("/checkins", attendeeGuard)
	checkins.Post("/", checkinCtrl.Checkin)
	checkins.Post("/checkout", checkinCtrl.Checkout)
}
