package requests

import "github.com/goccy/go-json"

// ActionRequest is the website-originated envelope. Payload stays raw until
// the action tag selects the concrete payload type.
type ActionRequest struct {
	Action            string          `json:"action" validate:"required"`
	RecipientIdentity string          `json:"recipientIdentity" validate:"required,chat_identity"`
	Payload           json.RawMessage `json:"payload"`
}

type SendOtpPayload struct {
	Purpose string `json:"purpose" validate:"required,max=64"`
}

type LoginAlertPayload struct {
	IP       string `json:"ip"`
	Device   string `json:"device"`
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Location string `json:"location"`
}
