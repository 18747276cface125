package responses

import "time"

type OtpIssued struct {
	Recipient string    `json:"recipient"`
	Purpose   string    `json:"purpose"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LoginAlertCreated struct {
	AlertID   string    `json:"alert_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
