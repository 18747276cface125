package models

import "time"

const (
	LoginSessionStatusPending  = "pending"
	LoginSessionStatusApproved = "approved"
	LoginSessionStatusDenied   = "denied"
)

// LoginContext carries the opaque attempt details supplied by the website.
type LoginContext struct {
	IP       string `json:"ip"`
	Device   string `json:"device"`
	Browser  string `json:"browser"`
	OS       string `json:"os"`
	Location string `json:"location"`
}

// LoginSession is a pending login attempt awaiting the owner's out-of-band
// response. AlertID is the lookup key and doubles as the capability token
// embedded in the interactive controls, so it must be unguessable. Status
// moves pending->approved or pending->denied exactly once.
type LoginSession struct {
	AlertID       string       `json:"alert_id"`
	OwnerIdentity string       `json:"owner_identity"`
	Context       LoginContext `json:"context"`
	Status        string       `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	ExpiresAt     time.Time    `json:"expires_at"`
	// MessageRef addresses the dispatched interactive message so its
	// controls can be retracted once the session resolves.
	MessageRef string `json:"message_ref"`
}

func (s *LoginSession) Resolved() bool {
	return s.Status != LoginSessionStatusPending
}

func (s *LoginSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
