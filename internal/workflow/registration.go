package workflow

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/viewcampus/eventportal/internal/domain/registration"
	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/notifications"
	"github.com/viewcampus/eventportal/internal/store"
)

// PlaceholderPassword is assigned to users created implicitly through the
// registration form; they have never chosen a password of their own.
const PlaceholderPassword = "defaultpass"

// Registration runs the portal's one multi-step business operation:
// upsert the submitting user by email, record the registration, bump the
// event counter, then notify the admin. The steps are not atomic — a
// failure after the user upsert leaves no registration behind and there
// is no compensation path.
type Registration struct {
	store    *store.Store
	notifier notifications.Sender
	log      *slog.Logger
}

func NewRegistration(st *store.Store, notifier notifications.Sender, log *slog.Logger) *Registration {
	return &Registration{store: st, notifier: notifier, log: log}
}

// Submit assumes the form already passed boundary validation. The returned
// error, when non-nil, is only the notification failure: the registration
// itself has been recorded and must be treated as a success.
func (w *Registration) Submit(ctx context.Context, form registration.Form) (registration.Registration, error) {
	u, ok := w.store.UserByEmail(form.EmailAddress)
	if !ok {
		u = w.store.CreateUser(user.New{
			Email:       form.EmailAddress,
			Password:    PlaceholderPassword,
			Role:        user.RoleStudent,
			FullName:    form.FullName,
			RollNumber:  form.RollNumber,
			Branch:      form.Branch,
			YearOfStudy: form.YearOfStudy,
			PhoneNumber: form.PhoneNumber,
		})
	} else {
		// Last submission wins: profile fields are overwritten
		// unconditionally, no merge conflict detection.
		u, _ = w.store.UpdateUser(u.ID, user.Update{
			FullName:    &form.FullName,
			RollNumber:  &form.RollNumber,
			Branch:      &form.Branch,
			YearOfStudy: &form.YearOfStudy,
			PhoneNumber: &form.PhoneNumber,
		})
	}

	reg := w.store.CreateRegistration(registration.New{
		UserID:          u.ID,
		EventID:         form.EventID,
		EventCategories: form.EventCategories,
	})

	// The event may legitimately be missing; the notice then carries an
	// empty event name, mirroring the registration row itself.
	eventName := ""
	if e, ok := w.store.Event(form.EventID); ok {
		eventName = e.Name
	}

	err := w.notifier.SendRegistrationNotice(ctx, notifications.RegistrationNotice{
		EventName:        eventName,
		StudentName:      form.FullName,
		RollNumber:       form.RollNumber,
		Email:            form.EmailAddress,
		Phone:            form.PhoneNumber,
		Branch:           form.Branch,
		Year:             form.YearOfStudy,
		Categories:       strings.Join(form.EventCategories, ", "),
		RegistrationTime: reg.RegistrationTime.Format(time.RFC1123),
	})
	if err != nil {
		w.log.Warn("registration notice failed",
			"registration_id", reg.ID,
			"event_id", form.EventID,
			"err", err,
		)
		return reg, err
	}

	return reg, nil
}
