package notifications

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// LogSender writes notices to the process log. It is the default sender in
// dev and test environments where no email provider is configured.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (n *LogSender) SendRegistrationNotice(ctx context.Context, in RegistrationNotice) error {
	// Optional: simulate slow provider
	if msStr := os.Getenv("NOTIFIER_SLEEP_MS"); msStr != "" {
		ms, _ := strconv.Atoi(msStr)
		if ms > 0 {
			select {
			case <-time.After(time.Duration(ms) * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	// Optional: simulate provider outage
	if os.Getenv("NOTIFIER_FAIL") == "1" {
		return fmt.Errorf("provider down (simulated)")
	}

	log.Printf("notification.registration_notice event=%q student=%q roll=%s email=%s categories=%q at=%s",
		in.EventName, in.StudentName, in.RollNumber, in.Email, in.Categories, in.RegistrationTime,
	)
	return nil
}
