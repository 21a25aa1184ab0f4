package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "checkinku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar untuk seluruh app.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
