package model

import (
	"time"
)

// AdminModel merepresentasikan tabel admins di database.
// Akun dibuat lewat seeding atau endpoint provisioning superadmin;
// tidak pernah dihapus di flow manapun.
type AdminModel struct {
	AdminID        uint      `gorm:"column:admin_id;primaryKey;autoIncrement" json:"admin_id"`
	AdminUsername  string    `gorm:"column:admin_username;size:100;uniqueIndex;not null" json:"admin_username"`
	AdminPassword  string    `gorm:"column:admin_password;size:255;not null" json:"-"`
	AdminName      string    `gorm:"column:admin_name;size:100;not null" json:"admin_name"`
	AdminRole      string    `gorm:"column:admin_role;type:varchar(20);not null;default:'admin'" json:"admin_role"`
	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
