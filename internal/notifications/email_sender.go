package notifications

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailSender delivers registration notices to the admin mailbox through
// the Resend API.
type EmailSender struct {
	client *resend.Client
	from   string
	to     string
	log    *slog.Logger
}

func NewEmailSender(apiKey, from, to string, log *slog.Logger) *EmailSender {
	return &EmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
		log:    log,
	}
}

func (n *EmailSender) SendRegistrationNotice(ctx context.Context, in RegistrationNotice) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New event registration: %s", in.EventName),
		Html:    noticeHTML(in),
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	n.log.Info("registration notice sent", "email_id", sent.Id, "to", n.to)
	return nil
}

func noticeHTML(in RegistrationNotice) string {
	row := func(label, value string) string {
		return fmt.Sprintf("<tr><td><b>%s</b></td><td>%s</td></tr>", label, html.EscapeString(value))
	}

	return "<h2>New Event Registration</h2><table>" +
		row("Event", in.EventName) +
		row("Student", in.StudentName) +
		row("Roll Number", in.RollNumber) +
		row("Email", in.Email) +
		row("Phone", in.Phone) +
		row("Branch", in.Branch) +
		row("Year of Study", in.Year) +
		row("Categories", in.Categories) +
		row("Registered At", in.RegistrationTime) +
		"</table>"
}
