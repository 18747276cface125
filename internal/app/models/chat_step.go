package models

import "time"

// ChatStep marks an open conversational step for an identity. The record
// lives in the store with its own TTL; an unanswered step is treated as
// abandoned and the identity falls back to stateless handling.
type ChatStep struct {
	Identity  string    `json:"identity"`
	Step      string    `json:"step"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *ChatStep) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
