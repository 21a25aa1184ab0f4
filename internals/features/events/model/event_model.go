package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventModel merepresentasikan tabel events.
// event_qrcode_url nullable sampai QR asset berhasil dibuat; metadata
// artefaknya (file, ukuran, format, kapan digenerate) disimpan di
// kolom JSONB event_qr_meta supaya regenerate bisa idempotent.
type EventModel struct {
	EventID                 uuid.UUID      `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`
	EventName               string         `gorm:"column:event_name;size:255;not null" json:"event_name"`
	EventDescription        string         `gorm:"column:event_description;type:text" json:"event_description"`
	EventStartTime          time.Time      `gorm:"column:event_start_time;not null" json:"event_start_time"`
	EventEndTime            time.Time      `gorm:"column:event_end_time;not null" json:"event_end_time"`
	EventLocation           string         `gorm:"column:event_location;size:255" json:"event_location"`
	EventMaxParticipants    *int           `gorm:"column:event_max_participants" json:"event_max_participants,omitempty"`
	EventType               string         `gorm:"column:event_type;size:50;not null;default:'meeting'" json:"event_type"`
	EventLocationValidation bool           `gorm:"column:event_location_validation;not null;default:false" json:"event_location_validation"`
	EventRequireCheckout    bool           `gorm:"column:event_require_checkout;not null;default:false" json:"event_require_checkout"`
	EventQRCodeURL          *string        `gorm:"column:event_qrcode_url;size:255" json:"event_qrcode_url,omitempty"`
	EventQRMeta             datatypes.JSON `gorm:"column:event_qr_meta" json:"event_qr_meta,omitempty"`
	EventCreatedBy          uint           `gorm:"column:event_created_by;not null" json:"event_created_by"`
	EventCreatedAt          time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt          time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

const EventTypeDefault = "meeting"
