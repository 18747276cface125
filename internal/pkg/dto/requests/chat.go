package requests

// ChatEvent is the inbound webhook payload for a user interaction on the
// messaging platform: either a plain text message or a callback fired by an
// interactive control, never both.
type ChatEvent struct {
	SenderIdentity string `json:"senderIdentity" validate:"required,chat_identity"`
	DisplayName    string `json:"displayName" validate:"max=128"`
	Text           string `json:"text"`
	CallbackData   string `json:"callbackData"`
}
