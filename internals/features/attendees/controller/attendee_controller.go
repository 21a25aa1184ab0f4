package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/attendees/service"
)

type AttendeeController struct {
	DB *gorm.DB
}

func NewAttendeeController(db *gorm.DB) *AttendeeController {
	return &AttendeeController{DB: db}
}

func (ac *AttendeeController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AttendeeController) LoginSocial(c *fiber.Ctx) error {
	return service.LoginSocial(ac.DB, c)
}

func (ac *AttendeeController) Me(c *fiber.Ctx) error {
	return service.Me(ac.DB, c)
}
