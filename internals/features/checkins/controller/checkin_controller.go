package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/checkins/service"
)

type CheckinController struct {
	DB *gorm.DB
}

func NewCheckinController(db *gorm.DB) *CheckinController {
	return &CheckinController{DB: db}
}

func (cc *CheckinController) Checkin(c *fiber.Ctx) error {
	return service.Checkin(cc.DB, c)
}

func (cc *CheckinController) Checkout(c *fiber.Ctx) error {
	return service.Checkout(cc.DB, c)
}
