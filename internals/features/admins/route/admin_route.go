package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/configs"
	"checkinku_backend/internals/constants"
	adminController "checkinku_backend/internals/features/admins/controller"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
)

// 🔐 Provisioning & roster admin
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	adminCtrl := adminController.NewAdminController(db)

	admins := app.Group("/admins",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// roster: admin & superadmin
	admins.Get("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("viewing the admin roster"),
			constants.AdminAndAbove,
		),
		adminCtrl.GetAdmins,
	)

	// provisioning: superadmin only
	admins.Post("/",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorSuperadmin("creating admin accounts"),
			constants.SuperadminOnly,
		),
		adminCtrl.CreateAdmin,
	)
}
