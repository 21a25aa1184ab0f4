package model

import (
	"time"
)

// AttendeeModel merepresentasikan tabel users: peserta yang teridentifikasi
// lewat identitas social login (user_external_id). Dibuat tepat sekali per
// identitas; setelah itu immutable di flow check-in.
type AttendeeModel struct {
	UserID         uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserExternalID string    `gorm:"column:user_external_id;size:255;uniqueIndex;not null" json:"user_external_id"`
	UserName       string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	UserPhone      string    `gorm:"column:user_phone;size:20;not null" json:"user_phone"`
	UserCompany    string    `gorm:"column:user_company;size:255;not null" json:"user_company"`
	UserDepartment string    `gorm:"column:user_department;size:100;not null" json:"user_department"`
	UserCreatedAt  time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt  time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (AttendeeModel) TableName() string {
	return "users"
}
