package dto

import (
	"checkinku_backend/internals/features/attendees/model"
)

// ============================
// Request DTO
// ============================

// Nomor HP lokal: 10 digit, prefix 09.
type RegisterAttendeeRequest struct {
	ExternalID string `json:"external_id" validate:"required,max=255"`
	Name       string `json:"name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,len=10,numeric,startswith=09"`
	Company    string `json:"company" validate:"required,max=255"`
	Department string `json:"department" validate:"required,max=100"`
}

type SocialLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// ============================
// Response DTO
// ============================

type AttendeeDTO struct {
	UserID         uint   `json:"user_id"`
	UserExternalID string `json:"user_external_id"`
	UserName       string `json:"user_name"`
	UserPhone      string `json:"user_phone"`
	UserCompany    string `json:"user_company"`
	UserDepartment string `json:"user_department"`
}

func ToAttendeeDTO(m model.AttendeeModel) AttendeeDTO {
	return AttendeeDTO{
		UserID:         m.UserID,
		UserExternalID: m.UserExternalID,
		UserName:       m.UserName,
		UserPhone:      m.UserPhone,
		UserCompany:    m.UserCompany,
		UserDepartment: m.UserDepartment,
	}
}
