package admins

import (
	"log"
	"os"
	"strings"

	"gorm.io/gorm"

	"checkinku_backend/internals/constants"
	"checkinku_backend/internals/features/admins/model"
	"checkinku_backend/internals/features/admins/service"
)

// SeedInitialAdmin membuat superadmin pertama dari env ADMIN_SEED_USERNAME /
// ADMIN_SEED_PASSWORD saat tabel admins masih kosong. Idempotent: kalau
// sudah ada admin apa pun, seeder diam.
func SeedInitialAdmin(db *gorm.DB) {
	username := strings.TrimSpace(os.Getenv("ADMIN_SEED_USERNAME"))
	password := os.Getenv("ADMIN_SEED_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&model.AdminModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Seeder: gagal cek tabel admins: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		log.Printf("❌ Seeder: gagal hash password: %v", err)
		return
	}

	name := strings.TrimSpace(os.Getenv("ADMIN_SEED_NAME"))
	if name == "" {
		name = username
	}

	admin := model.AdminModel{
		AdminUsername: username,
		AdminPassword: hash,
		AdminName:     name,
		AdminRole:     constants.RoleSuperadmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Seeder: gagal buat superadmin awal: %v", err)
		return
	}
	log.Printf("✅ Seeder: superadmin awal '%s' dibuat", username)
}
