package service

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"checkinku_backend/internals/configs"
	database "checkinku_backend/internals/databases"
	attendeeModel "checkinku_backend/internals/features/attendees/model"
	checkinModel "checkinku_backend/internals/features/checkins/model"
	"checkinku_backend/internals/features/events/model"
	authMiddleware "checkinku_backend/internals/middlewares/auth"
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
		db.Exec("DELETE FROM events")
		db.Exec("DELETE FROM users")
	})
	return db
}

// app admin mini: locals admin terisi seolah lolos guard.
func newEventTestApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	asAdmin := func(c *fiber.Ctx) error {
		c.Locals(authMiddleware.LocAdminID, uint(1))
		c.Locals(authMiddleware.LocAdminRole, "admin")
		return c.Next()
	}
	app.Post("/events", asAdmin, func(c *fiber.Ctx) error { return CreateEvent(db, c) })
	app.Delete("/events/:id", asAdmin, func(c *fiber.Ctx) error { return DeleteEvent(db, c) })
	return app
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	raw, _ := io.ReadAll(r)
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body not JSON: %v (%s)", err, raw)
	}
	return body
}

func TestCreateEventReturnsEventURL(t *testing.T) {
	db := openTestDB(t)
	configs.StorageType = "local"
	configs.StorageRoot = t.TempDir()
	configs.BaseURL = "https://checkin.example.com"

	app := newEventTestApp(db)

	payload := `{"name":"Town Hall","start_time":"2025-03-01T09:00","end_time":"2025-03-01T11:00"}`
	req := httptest.NewRequest("POST", "/events", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatal("data missing")
	}
	event, _ := data["event"].(map[string]any)
	if event == nil {
		t.Fatal("data.event missing")
	}
	id, _ := event["event_id"].(string)
	if id == "" {
		t.Fatal("event_id missing")
	}
	if url, _ := data["event_url"].(string); url != configs.BaseURL+"/event/"+id {
		t.Errorf("event_url = %q, want %q", url, configs.BaseURL+"/event/"+id)
	}
	if qr, _ := event["event_qrcode_url"].(string); qr != "/files/qrcodes/event_qr_"+id+".png" {
		t.Errorf("event_qrcode_url = %q", qr)
	}
}

func TestDeleteEventGuardedByCheckins(t *testing.T) {
	db := openTestDB(t)
	configs.StorageType = "local"
	configs.StorageRoot = t.TempDir()

	app := newEventTestApp(db)

	attendee := attendeeModel.AttendeeModel{
		UserExternalID: "U-del",
		UserName:       "Del",
		UserPhone:      "0933333333",
		UserCompany:    "PT Uji",
		UserDepartment: "QA",
	}
	if err := db.Create(&attendee).Error; err != nil {
		t.Fatalf("create attendee: %v", err)
	}

	event := model.EventModel{
		EventName:      "Dihadiri",
		EventStartTime: time.Now(),
		EventEndTime:   time.Now().Add(time.Hour),
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	if err := db.Create(&checkinModel.CheckinModel{
		CheckinUserID:  attendee.UserID,
		CheckinEventID: event.EventID,
		CheckinTime:    time.Now(),
		CheckinStatus:  checkinModel.CheckinStatusPresent,
		CheckinIsValid: true,
	}).Error; err != nil {
		t.Fatalf("create checkin: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("DELETE", "/events/"+event.EventID.String(), nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	body := decodeBody(t, resp.Body)
	resp.Body.Close()
	data, _ := body["data"].(map[string]any)
	if data == nil {
		t.Fatal("409 body missing data")
	}
	if n, _ := data["checkin_count"].(float64); int64(n) != 1 {
		t.Errorf("checkin_count = %v, want 1", data["checkin_count"])
	}

	// event-nya masih ada
	if _, err := findEventByID(db, event.EventID.String()); err != nil {
		t.Errorf("guarded event vanished: %v", err)
	}
}

func TestDeleteEventWithoutCheckins(t *testing.T) {
	db := openTestDB(t)
	configs.StorageType = "local"
	configs.StorageRoot = t.TempDir()

	app := newEventTestApp(db)

	event := model.EventModel{
		EventName:      "Kosong",
		EventStartTime: time.Now(),
		EventEndTime:   time.Now().Add(time.Hour),
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	resp, err := app.Test(httptest.NewRequest("DELETE", "/events/"+event.EventID.String(), nil), -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	if _, err := findEventByID(db, event.EventID.String()); err != ErrEventNotFound {
		t.Errorf("deleted event still retrievable: err = %v", err)
	}
}

func TestPublicEventListFilterAndOrder(t *testing.T) {
	db := openTestDB(t)

	now := time.Now()
	seed := []model.EventModel{
		{EventName: "Sudah lewat", EventStartTime: now.Add(-48 * time.Hour), EventEndTime: now.Add(-24 * time.Hour)},
		{EventName: "Minggu depan", EventStartTime: now.Add(168 * time.Hour), EventEndTime: now.Add(170 * time.Hour)},
		{EventName: "Sedang jalan", EventStartTime: now.Add(-time.Hour), EventEndTime: now.Add(time.Hour)},
		{EventName: "Besok", EventStartTime: now.Add(24 * time.Hour), EventEndTime: now.Add(26 * time.Hour)},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	var events []model.EventModel
	if err := db.Where("event_end_time >= ?", time.Now()).
		Order("event_start_time ASC").
		Find(&events).Error; err != nil {
		t.Fatalf("public list query: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3 (ended one excluded)", len(events))
	}
	for _, ev := range events {
		if ev.EventName == "Sudah lewat" {
			t.Error("ended event leaked into public list")
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].EventStartTime.Before(events[i-1].EventStartTime) {
			t.Error("public list not ordered by start time ascending")
		}
	}
}

func TestFindEventByIDMissing(t *testing.T) {
	db := openTestDB(t)

	if _, err := findEventByID(db, "3f2a9b60-dead-4eef-8000-000000000000"); err != ErrEventNotFound {
		t.Errorf("err = %v, want ErrEventNotFound", err)
	}
}

func TestCountCheckinsEmptyEvent(t *testing.T) {
	db := openTestDB(t)

	ev := model.EventModel{
		EventName:      "Kosong",
		EventStartTime: time.Now(),
		EventEndTime:   time.Now().Add(time.Hour),
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}

	n, err := countCheckins(db, ev.EventID.String())
	if err != nil {
		t.Fatalf("countCheckins: %v", err)
	}
	if n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}
