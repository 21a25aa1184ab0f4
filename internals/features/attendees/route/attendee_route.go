package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/configs"
	attendeeController "checkinku_backend/internals/features/attendees/controller"
	"checkinku_backend/internals/middlewares"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

func AttendeeRoutes(app *fiber.App, db *gorm.DB) {
	attendeeCtrl := attendeeController.NewAttendeeController(db)

	attendees := app.Group("/attendees")
	attendees.Post("/", middlewares.RegisterRateLimiter(), attendeeCtrl.Register) // ➕ registrasi sekali per identitas
	attendees.Post("/login", attendeeCtrl.LoginSocial)                            // 🔑 tukar ID token → attendee token

	attendees.Get("/me",
		authMiddleware.AttendeeJWT(authMiddleware.AuthJWTOpts{Secret: configs.JWTSecret}),
		attendeeCtrl.Me,
	)
}
