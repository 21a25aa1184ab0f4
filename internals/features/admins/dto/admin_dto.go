package dto

import (
	"time"

	"checkinku_backend/internals/features/admins/model"
)

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin superadmin"`
}

// ============================
// Response DTO
// ============================

type AdminDTO struct {
	AdminID        uint      `json:"admin_id"`
	AdminUsername  string    `json:"admin_username"`
	AdminName      string    `json:"admin_name"`
	AdminRole      string    `json:"admin_role"`
	AdminCreatedAt time.Time `json:"admin_created_at"`
}

func ToAdminDTO(m model.AdminModel) AdminDTO {
	return AdminDTO{
		AdminID:        m.AdminID,
		AdminUsername:  m.AdminUsername,
		AdminName:      m.AdminName,
		AdminRole:      m.AdminRole,
		AdminCreatedAt: m.AdminCreatedAt,
	}
}

func ToAdminDTOList(ms []model.AdminModel) []AdminDTO {
	out := make([]AdminDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAdminDTO(m))
	}
	return out
}
