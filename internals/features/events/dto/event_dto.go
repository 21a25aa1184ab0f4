package dto

import (
	"time"

	"checkinku_backend/internals/features/events/model"
)

// ============================
// Create & Update Request DTO
// ============================

// Waktu dikirim sebagai string supaya format datetime-local dari form
// ("2025-01-01T09:00") tetap diterima; parsing di service.
type CreateEventRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	Description        string `json:"description"`
	StartTime          string `json:"start_time" validate:"required"`
	EndTime            string `json:"end_time" validate:"required"`
	Location           string `json:"location" validate:"max=255"`
	MaxParticipants    *int   `json:"max_participants"`
	EventType          string `json:"event_type" validate:"omitempty,max=50"`
	LocationValidation bool   `json:"location_validation"`
	RequireCheckout    bool   `json:"require_checkout"`
}

type UpdateEventRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	Description        string `json:"description"`
	StartTime          string `json:"start_time" validate:"required"`
	EndTime            string `json:"end_time" validate:"required"`
	Location           string `json:"location" validate:"max=255"`
	MaxParticipants    *int   `json:"max_participants"`
	EventType          string `json:"event_type" validate:"omitempty,max=50"`
	LocationValidation bool   `json:"location_validation"`
	RequireCheckout    bool   `json:"require_checkout"`
}

// ============================
// Response DTO
// ============================

type EventDTO struct {
	EventID                 string     `json:"event_id"`
	EventName               string     `json:"event_name"`
	EventDescription        string     `json:"event_description"`
	EventStartTime          time.Time  `json:"event_start_time"`
	EventEndTime            time.Time  `json:"event_end_time"`
	EventLocation           string     `json:"event_location"`
	EventMaxParticipants    *int       `json:"event_max_participants,omitempty"`
	EventType               string     `json:"event_type"`
	EventLocationValidation bool       `json:"event_location_validation"`
	EventRequireCheckout    bool       `json:"event_require_checkout"`
	EventQRCodeURL          *string    `json:"event_qrcode_url"`
	EventCreatedBy          uint       `json:"event_created_by"`
	EventCreatedAt          time.Time  `json:"event_created_at"`
	EventUpdatedAt          time.Time  `json:"event_updated_at"`
}

// Item list dashboard: event + jumlah check-in-nya.
type EventListItemDTO struct {
	EventDTO
	CheckinCount int64 `json:"checkin_count"`
}

// Listing publik hanya mengekspos field yang dibutuhkan halaman check-in.
type PublicEventDTO struct {
	EventID          string    `json:"event_id"`
	EventName        string    `json:"event_name"`
	EventDescription string    `json:"event_description"`
	EventStartTime   time.Time `json:"event_start_time"`
	EventEndTime     time.Time `json:"event_end_time"`
	EventLocation    string    `json:"event_location"`
	EventQRCodeURL   *string   `json:"event_qrcode_url"`
}

// Baris kehadiran untuk tabel admin: checkin digabung field display attendee.
type EventCheckinItemDTO struct {
	CheckinID           uint       `json:"checkin_id"`
	UserID              uint       `json:"user_id"`
	UserName            string     `json:"user_name"`
	UserPhone           string     `json:"user_phone"`
	UserCompany         string     `json:"user_company"`
	UserDepartment      string     `json:"user_department"`
	CheckinTime         time.Time  `json:"checkin_time"`
	CheckinCheckoutTime *time.Time `json:"checkin_checkout_time"`
	CheckinStatus       string     `json:"checkin_status"`
	CheckinGeolocation  string     `json:"checkin_geolocation,omitempty"`
}

type EventStatsDTO struct {
	Total      int64 `json:"total"`
	CheckedIn  int64 `json:"checked_in"`
	CheckedOut int64 `json:"checked_out"`
}

// ============================
// Converter
// ============================

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		EventID:                 m.EventID.String(),
		EventName:               m.EventName,
		EventDescription:        m.EventDescription,
		EventStartTime:          m.EventStartTime,
		EventEndTime:            m.EventEndTime,
		EventLocation:           m.EventLocation,
		EventMaxParticipants:    m.EventMaxParticipants,
		EventType:               m.EventType,
		EventLocationValidation: m.EventLocationValidation,
		EventRequireCheckout:    m.EventRequireCheckout,
		EventQRCodeURL:          m.EventQRCodeURL,
		EventCreatedBy:          m.EventCreatedBy,
		EventCreatedAt:          m.EventCreatedAt,
		EventUpdatedAt:          m.EventUpdatedAt,
	}
}

func ToPublicEventDTO(m model.EventModel) PublicEventDTO {
	return PublicEventDTO{
		EventID:          m.EventID.String(),
		EventName:        m.EventName,
		EventDescription: m.EventDescription,
		EventStartTime:   m.EventStartTime,
		EventEndTime:     m.EventEndTime,
		EventLocation:    m.EventLocation,
		EventQRCodeURL:   m.EventQRCodeURL,
	}
}

func ToPublicEventDTOList(ms []model.EventModel) []PublicEventDTO {
	out := make([]PublicEventDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPublicEventDTO(m))
	}
	return out
}
