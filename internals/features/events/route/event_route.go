package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/configs"
	"checkinku_backend/internals/constants"
	eventController "checkinku_backend/internals/features/events/controller"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

// 📅 Event CRUD + QR + statistik. Endpoint publik didaftarkan duluan
// supaya /events/public tidak tertelan /events/:id.
func EventRoutes(app *fiber.App, db *gorm.DB) {
	eventCtrl := eventController.NewEventController(db)

	adminGuard := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	adminOnly := authMiddleware.OnlyRolesSlice(
		constants.RoleErrorAdmin("managing events"),
		constants.AdminAndAbove,
	)

	events := app.Group("/events")

	// publik: halaman check-in
	events.Get("/public", eventCtrl.GetPublic)
	events.Get("/:id", eventCtrl.GetByID)

	// admin
	events.Post("/", adminGuard, adminOnly, eventCtrl.Create)
	events.Post("/:id/qrcode", adminGuard, adminOnly, eventCtrl.RegenerateQR)
	events.Get("/", adminGuard, adminOnly, eventCtrl.GetAll)
	events.Put("/:id", adminGuard, adminOnly, eventCtrl.Update)
	events.Delete("/:id", adminGuard, adminOnly, eventCtrl.Delete)
	events.Get("/:id/stats", adminGuard, adminOnly, eventCtrl.Stats)
	events.Get("/:id/checkins", adminGuard, adminOnly, eventCtrl.Checkins)
}
