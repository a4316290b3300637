package session

import "time"

// Session is a login record, not a cryptographic token. It flips to
// inactive on logout and is never deleted or expired by time.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	LoginTime time.Time `json:"loginTime"`
	IsActive  bool      `json:"isActive"`
}
