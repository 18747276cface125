package models

const (
	CallbackKindConfirm = "confirm"
	CallbackKindDeny    = "deny"
	CallbackKindUnknown = "unknown"
)

// CallbackAction is the decoded form of an interactive-control payload.
// Raw payload strings are parsed exactly once at the inbound boundary.
type CallbackAction struct {
	Kind    string
	AlertID string
}

func (a CallbackAction) Known() bool {
	return a.Kind == CallbackKindConfirm || a.Kind == CallbackKindDeny
}
