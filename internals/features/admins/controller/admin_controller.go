package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/admins/dto"
	"checkinku_backend/internals/features/admins/model"
	"checkinku_backend/internals/features/admins/service"
	helper "checkinku_backend/internals/helpers"
)

var validateAdmin = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// =============================
// ➕ Create Admin (superadmin only, via role middleware)
// =============================
func (ctrl *AdminController) CreateAdmin(c *fiber.Ctx) error {
	var body dto.CreateAdminRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAdmin.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FormatValidatorErrors(err))
	}

	var existing model.AdminModel
	err := ctrl.DB.Where("admin_username = ?", body.Username).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Username already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] admin lookup: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	admin := model.AdminModel{
		AdminUsername: body.Username,
		AdminPassword: hash,
		AdminName:     body.Name,
		AdminRole:     body.Role,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		// unique index admins.admin_username menang atas race provisioning ganda
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username already in use")
		}
		log.Printf("[ERROR] create admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	return helper.JsonCreated(c, "Admin created", fiber.Map{
		"admin": dto.ToAdminDTO(admin),
	})
}

// =============================
// 📄 Admin roster (tanpa password hash)
// =============================
func (ctrl *AdminController) GetAdmins(c *fiber.Ctx) error {
	var admins []model.AdminModel
	if err := ctrl.DB.Order("admin_id ASC").Find(&admins).Error; err != nil {
		log.Printf("[ERROR] list admins: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admins")
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"admins": dto.ToAdminDTOList(admins),
	})
}
