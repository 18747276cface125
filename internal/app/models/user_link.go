package models

import "time"

const (
	LinkStatusUnlinked = "unlinked"
	LinkStatusLinked   = "linked"
	LinkStatusBlocked  = "blocked"
)

// UserLink ties an external chat identity to a website account. Records are
// created on first contact and soft-disabled via Status, never deleted.
type UserLink struct {
	ID           string    `bson:"_id,omitempty"`
	Identity     string    `bson:"identity"`
	DisplayName  string    `bson:"displayName"`
	Status       string    `bson:"status"`
	RegisteredAt time.Time `bson:"registeredAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
