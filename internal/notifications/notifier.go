package notifications

import "context"

// RegistrationNotice carries everything the admin notification template
// needs. Categories is pre-joined and RegistrationTime is already
// human-readable; the sender does no formatting of its own.
type RegistrationNotice struct {
	EventName        string
	StudentName      string
	RollNumber       string
	Email            string
	Phone            string
	Branch           string
	Year             string
	Categories       string
	RegistrationTime string
}

type Sender interface {
	SendRegistrationNotice(ctx context.Context, notice RegistrationNotice) error
}
