package route

import (
	"github.com/gofiber/fiber/v2"

	fileController "checkinku_backend/internals/features/files/controller"
)

// 📁 Asset statis hasil generate (QR code, thumbnail).
func FileRoutes(app *fiber.App) {
	fileCtrl := fileController.NewFileController()
	app.Get("/files/*", fileCtrl.Serve)
}
