package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/events/service"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

func (ec *EventController) Create(c *fiber.Ctx) error {
	return service.CreateEvent(ec.DB, c)
}

func (ec *EventController) RegenerateQR(c *fiber.Ctx) error {
	return service.RegenerateEventQR(ec.DB, c)
}

func (ec *EventController) GetAll(c *fiber.Ctx) error {
	return service.GetEvents(ec.DB, c)
}

func (ec *EventController) GetByID(c *fiber.Ctx) error {
	return service.GetEvent(ec.DB, c)
}

func (ec *EventController) GetPublic(c *fiber.Ctx) error {
	return service.GetPublicEvents(ec.DB, c)
}

func (ec *EventController) Update(c *fiber.Ctx) error {
	return service.UpdateEvent(ec.DB, c)
}

func (ec *EventController) Delete(c *fiber.Ctx) error {
	return service.DeleteEvent(ec.DB, c)
}

func (ec *EventController) Stats(c *fiber.Ctx) error {
	return service.GetEventStats(ec.DB, c)
}

func (ec *EventController) Checkins(c *fiber.Ctx) error {
	return service.GetEventCheckins(ec.DB, c)
}
