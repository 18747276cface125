package models

import "time"

// OtpChallenge is the active one-time code for a recipient. One challenge per
// recipient: issuing a new one overwrites the previous, which silently becomes
// invalid. Only the bcrypt hash of the code is persisted.
type OtpChallenge struct {
	Recipient string    `json:"recipient"`
	CodeHash  string    `json:"code_hash"`
	Purpose   string    `json:"purpose"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c *OtpChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
