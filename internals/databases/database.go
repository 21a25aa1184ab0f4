package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	adminModel "checkinku_backend/internals/features/admins/model"
	attendeeModel "checkinku_backend/internals/features/attendees/model"
	checkinModel "checkinku_backend/internals/features/checkins/model"
	eventModel "checkinku_backend/internals/features/events/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=checkinku&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

// Migrate creates the four tables and the storage-level guard for the
// check-in invariant. AutoMigrate alone cannot express a partial unique
// index, so that one is raw DDL.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&adminModel.AdminModel{},
		&attendeeModel.AttendeeModel{},
		&eventModel.EventModel{},
		&checkinModel.CheckinModel{},
	); err != nil {
		return err
	}

	// At most one active check-in per (attendee, event). The losing
	// writer of a concurrent pair hits 23505 here, never a duplicate row.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_checkins_active_pair
		ON checkins (checkin_user_id, checkin_event_id)
		WHERE checkin_is_valid`).Error
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
