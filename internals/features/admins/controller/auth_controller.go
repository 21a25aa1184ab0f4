package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/admins/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}

func (ac *AuthController) Check(c *fiber.Ctx) error {
	return service.Check(ac.DB, c)
}
