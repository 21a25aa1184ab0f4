package dto

import (
	"time"

	"checkinku_backend/internals/features/checkins/model"
)

type CheckinRequest struct {
	UserID      uint   `json:"user_id" validate:"required"`
	EventID     string `json:"event_id" validate:"required,uuid4"`
	Geolocation string `json:"geolocation" validate:"omitempty,max=100"`
}

type CheckoutRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	EventID string `json:"event_id" validate:"required,uuid4"`
}

type CheckinDTO struct {
	CheckinID           uint       `json:"checkin_id"`
	CheckinUserID       uint       `json:"checkin_user_id"`
	CheckinEventID      string     `json:"checkin_event_id"`
	CheckinTime         time.Time  `json:"checkin_time"`
	CheckinCheckoutTime *time.Time `json:"checkin_checkout_time"`
	CheckinStatus       string     `json:"checkin_status"`
	CheckinGeolocation  string     `json:"checkin_geolocation,omitempty"`
	CheckinIsValid      bool       `json:"checkin_is_valid"`
}

func ToCheckinDTO(m model.CheckinModel) CheckinDTO {
	return CheckinDTO{
		CheckinID:           m.CheckinID,
		CheckinUserID:       m.CheckinUserID,
		CheckinEventID:      m.CheckinEventID.String(),
		CheckinTime:         m.CheckinTime,
		CheckinCheckoutTime: m.CheckinCheckoutTime,
		CheckinStatus:       m.CheckinStatus,
		CheckinGeolocation:  m.CheckinGeolocation,
		CheckinIsValid:      m.CheckinIsValid,
	}
}
