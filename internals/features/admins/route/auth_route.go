package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminController "checkinku_backend/internals/features/admins/controller"
	"checkinku_backend/internals/middlewares"
)

// AuthRoutes: login/logout/check, semua publik.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := adminController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login) // 🔑 login admin
	auth.Post("/logout", authCtrl.Logout)                               // 🚪 clear cookie
	auth.Get("/check", authCtrl.Check)                                  // 🔎 selalu 200 + flag
}
