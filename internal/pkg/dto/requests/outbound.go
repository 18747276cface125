package requests

// OutboundButton is one interactive control attached to a chat message.
type OutboundButton struct {
	Label string `json:"label"`
	Data  string `json:"data"`
}

// OutboundMessage is the command published for the platform worker: either a
// new message ("send", optionally with controls) or an in-place edit ("edit")
// addressing the original message by Ref.
type OutboundMessage struct {
	Type      string           `json:"type"`
	Recipient string           `json:"recipient"`
	Text      string           `json:"text"`
	Buttons   []OutboundButton `json:"buttons,omitempty"`
	Ref       string           `json:"ref,omitempty"`
}
