package model

import (
	"time"

	"github.com/google/uuid"

	attendeeModel "checkinku_backend/internals/features/attendees/model"
	eventModel "checkinku_backend/internals/features/events/model"
)

// CheckinModel merepresentasikan tabel checkins.
// Pasangan (checkin_user_id, checkin_event_id) dijaga unik selama
// checkin_is_valid oleh partial unique index uq_checkins_active_pair
// (dibuat di migrasi) — race check-in ganda kalah di database, bukan
// di application check.
type CheckinModel struct {
	CheckinID           uint       `gorm:"column:checkin_id;primaryKey;autoIncrement" json:"checkin_id"`
	CheckinUserID       uint       `gorm:"column:checkin_user_id;not null;index" json:"checkin_user_id"`
	CheckinEventID      uuid.UUID  `gorm:"column:checkin_event_id;type:uuid;not null;index" json:"checkin_event_id"`
	CheckinTime         time.Time  `gorm:"column:checkin_time;not null;autoCreateTime" json:"checkin_time"`
	CheckinCheckoutTime *time.Time `gorm:"column:checkin_checkout_time" json:"checkin_checkout_time"`
	CheckinStatus       string     `gorm:"column:checkin_status;size:20;not null;default:'present'" json:"checkin_status"`
	CheckinGeolocation  string     `gorm:"column:checkin_geolocation;size:100" json:"checkin_geolocation,omitempty"`
	CheckinIsValid      bool       `gorm:"column:checkin_is_valid;not null;default:true" json:"checkin_is_valid"`
	CheckinCreatedAt    time.Time  `gorm:"column:checkin_created_at;autoCreateTime" json:"checkin_created_at"`
	CheckinUpdatedAt    time.Time  `gorm:"column:checkin_updated_at;autoUpdateTime" json:"checkin_updated_at"`

	Attendee *attendeeModel.AttendeeModel `gorm:"foreignKey:CheckinUserID;references:UserID" json:"attendee,omitempty"`
	Event    *eventModel.EventModel       `gorm:"foreignKey:CheckinEventID;references:EventID" json:"event,omitempty"`
}

func (CheckinModel) TableName() string {
	return "checkins"
}

const CheckinStatusPresent = "present"
