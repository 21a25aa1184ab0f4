package service

import (
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"checkinku_backend/internals/configs"
	database "checkinku_backend/internals/databases"
	"checkinku_backend/internals/features/attendees/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM checkins")
		db.Exec("DELETE FROM users")
	})
	return db
}

func postRegister(t *testing.T, app *fiber.App, payload string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/attendees", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestRegisterDuplicateIdentityKeepsFirstRecord(t *testing.T) {
	db := openTestDB(t)
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Post("/attendees", func(c *fiber.Ctx) error { return Register(db, c) })

	first := `{"external_id":"U-dup","name":"Pertama","phone":"0911111111","company":"PT Satu","department":"HR"}`
	if status := postRegister(t, app, first); status != fiber.StatusCreated {
		t.Fatalf("first register status = %d, want 201", status)
	}

	// identitas sama, data beda: harus 409 dan record pertama utuh
	second := `{"external_id":"U-dup","name":"Kedua","phone":"0922222222","company":"PT Dua","department":"IT"}`
	if status := postRegister(t, app, second); status != fiber.StatusConflict {
		t.Fatalf("duplicate register status = %d, want 409", status)
	}

	var got model.AttendeeModel
	if err := db.Where("user_external_id = ?", "U-dup").First(&got).Error; err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got.UserName != "Pertama" || got.UserPhone != "0911111111" || got.UserCompany != "PT Satu" {
		t.Errorf("first record altered: %+v", got)
	}

	var count int64
	db.Model(&model.AttendeeModel{}).Where("user_external_id = ?", "U-dup").Count(&count)
	if count != 1 {
		t.Errorf("records for identity = %d, want 1", count)
	}
}

// Validasi field jalan sebelum akses database, jadi test ini tidak
// butuh TEST_DATABASE_DSN.
func TestRegisterFieldValidationReturns400(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Post("/attendees", func(c *fiber.Ctx) error { return Register(nil, c) })

	bad := `{"external_id":"U-bad","name":"X","phone":"123","company":"PT","department":"QA"}`
	if status := postRegister(t, app, bad); status != fiber.StatusBadRequest {
		t.Fatalf("field-validation status = %d, want 400", status)
	}
}
