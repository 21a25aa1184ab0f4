package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"checkinku_backend/internals/features/events/dto"
	"checkinku_backend/internals/features/events/model"
)

var (
	ErrBadTimeFormat = errors.New("format waktu tidak dikenali")
	ErrInvalidWindow = errors.New("waktu selesai harus setelah waktu mulai")
	ErrEventNotFound = errors.New("event tidak ditemukan")
)

// Layout yang diterima dari client; form datetime-local mengirim tanpa detik
// dan tanpa zona, jadi RFC3339 saja tidak cukup.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseEventTime mencoba beberapa layout; waktu tanpa zona dianggap lokal server.
func ParseEventTime(s string) (time.Time, error) {
	for _, layout := range eventTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimeFormat
}

// ValidateEventWindow memastikan end strictly setelah start.
func ValidateEventWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	return nil
}

// ApplyEventRequest parse + validasi waktu request lalu menuangkannya ke model.
// Dipakai create dan update (update = full replace).
func ApplyEventRequest(m *model.EventModel, req dto.CreateEventRequest) error {
	start, err := ParseEventTime(req.StartTime)
	if err != nil {
		return err
	}
	end, err := ParseEventTime(req.EndTime)
	if err != nil {
		return err
	}
	if err := ValidateEventWindow(start, end); err != nil {
		return err
	}

	m.EventName = req.Name
	m.EventDescription = req.Description
	m.EventStartTime = start
	m.EventEndTime = end
	m.EventLocation = req.Location
	m.EventMaxParticipants = req.MaxParticipants
	m.EventType = req.EventType
	if m.EventType == "" {
		m.EventType = model.EventTypeDefault
	}
	m.EventLocationValidation = req.LocationValidation
	m.EventRequireCheckout = req.RequireCheckout
	return nil
}

// PartitionStats membagi total kehadiran menjadi masih-hadir / sudah-pulang.
// Semua angka diturunkan dari tabel checkins supaya
// total == checked_in + checked_out selalu berlaku; event tanpa
// require_checkout melaporkan partisi nol.
func PartitionStats(total, stillIn int64, requireCheckout bool) dto.EventStatsDTO {
	if !requireCheckout {
		return dto.EventStatsDTO{Total: total}
	}
	return dto.EventStatsDTO{
		Total:      total,
		CheckedIn:  stillIn,
		CheckedOut: total - stillIn,
	}
}

func findEventByID(db *gorm.DB, eventID string) (*model.EventModel, error) {
	// id yang bukan uuid tidak mungkin match; jangan sampai jadi
	// syntax error Postgres
	id, err := uuid.Parse(eventID)
	if err != nil {
		return nil, ErrEventNotFound
	}

	var m model.EventModel
	if err := db.First(&m, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &m, nil
}

func countCheckins(db *gorm.DB, eventID string) (int64, error) {
	var n int64
	err := db.Table("checkins").Where("checkin_event_id = ?", eventID).Count(&n).Error
	return n, err
}

// checkinCountsByEvent peta event_id -> jumlah check-in, untuk list dashboard.
func checkinCountsByEvent(db *gorm.DB) (map[string]int64, error) {
	type row struct {
		EventID string
		Total   int64
	}
	var rows []row
	err := db.Table("checkins").
		Select("checkin_event_id AS event_id, COUNT(*) AS total").
		Group("checkin_event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.EventID] = r.Total
	}
	return out, nil
}
