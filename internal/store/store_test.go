package store_test

import (
	"testing"

	"github.com/viewcampus/eventportal/internal/domain/event"
	"github.com/viewcampus/eventportal/internal/domain/registration"
	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/store"
)

func TestSeedData(t *testing.T) {
	s := store.New()

	admin, ok := s.UserByEmail(store.SeedAdminEmail)
	if !ok {
		t.Fatalf("seeded admin not found")
	}
	if admin.Password != store.SeedAdminPassword {
		t.Errorf("admin password = %q, want %q", admin.Password, store.SeedAdminPassword)
	}
	if admin.Role != user.RoleAdmin {
		t.Errorf("admin role = %q, want %q", admin.Role, user.RoleAdmin)
	}

	events := s.AllEvents()
	if len(events) != 2 {
		t.Fatalf("seeded events = %d, want 2", len(events))
	}

	byName := map[string]event.Event{}
	for _, e := range events {
		byName[e.Name] = e
	}

	techritz, ok := byName["Techritz"]
	if !ok {
		t.Fatalf("Techritz not seeded")
	}
	if techritz.MaxSeats != 500 || techritz.Category != "Art" || !techritz.IsActive {
		t.Errorf("Techritz seeded wrong: %+v", techritz)
	}

	yuvatarang, ok := byName["yuvatarang"]
	if !ok {
		t.Fatalf("yuvatarang not seeded")
	}
	if yuvatarang.MaxSeats != 5000 || yuvatarang.CurrentRegistrations != 0 {
		t.Errorf("yuvatarang seeded wrong: %+v", yuvatarang)
	}

	if got := len(s.Categories()); got != len(store.DefaultCategories) {
		t.Errorf("seeded categories = %d, want %d", got, len(store.DefaultCategories))
	}
}

func TestCreateUserDefaults(t *testing.T) {
	s := store.NewEmpty()

	u := s.CreateUser(user.New{Email: "a@b.edu", Password: "pw"})

	if u.ID == "" {
		t.Fatalf("expected generated id")
	}
	if u.Role != user.RoleStudent {
		t.Errorf("role = %q, want student default", u.Role)
	}
	if u.CreatedAt.IsZero() {
		t.Errorf("expected creation timestamp")
	}

	got, ok := s.User(u.ID)
	if !ok || got.Email != "a@b.edu" {
		t.Errorf("round trip failed: %+v ok=%v", got, ok)
	}
}

func TestUpdateUserShallowMerge(t *testing.T) {
	s := store.NewEmpty()

	u := s.CreateUser(user.New{
		Email:      "a@b.edu",
		Password:   "pw",
		FullName:   "Original Name",
		RollNumber: "21CS001",
		Branch:     "CSE",
	})

	name := "New Name"
	updated, ok := s.UpdateUser(u.ID, user.Update{FullName: &name})

	if !ok {
		t.Fatalf("update reported unknown id")
	}
	if updated.FullName != "New Name" {
		t.Errorf("fullName = %q, want %q", updated.FullName, "New Name")
	}
	// untouched fields survive the merge
	if updated.RollNumber != "21CS001" || updated.Branch != "CSE" || updated.Email != "a@b.edu" {
		t.Errorf("merge clobbered untouched fields: %+v", updated)
	}
}

func TestUpdateUserUnknownIDFailsSilently(t *testing.T) {
	s := store.NewEmpty()

	name := "whoever"
	_, ok := s.UpdateUser("nope", user.Update{FullName: &name})

	if ok {
		t.Fatalf("expected ok=false for unknown id")
	}
}

func TestCreateEventDefaults(t *testing.T) {
	s := store.NewEmpty()

	e := s.CreateEvent(event.CreateEventRequest{Name: "Hackathon", Category: "Technical"})

	if e.MaxSeats != event.DefaultMaxSeats {
		t.Errorf("maxSeats = %d, want default %d", e.MaxSeats, event.DefaultMaxSeats)
	}
	if !e.IsActive {
		t.Errorf("new events start active")
	}
	if e.CurrentRegistrations != 0 {
		t.Errorf("counter = %d, want 0", e.CurrentRegistrations)
	}
}

func TestActiveEventsFiltersInactive(t *testing.T) {
	s := store.NewEmpty()

	a := s.CreateEvent(event.CreateEventRequest{Name: "A", Category: "Cultural"})
	b := s.CreateEvent(event.CreateEventRequest{Name: "B", Category: "Sports"})

	inactive := false
	if _, ok := s.UpdateEvent(b.ID, event.Update{IsActive: &inactive}); !ok {
		t.Fatalf("deactivate failed")
	}

	active := s.ActiveEvents()
	if len(active) != 1 || active[0].ID != a.ID {
		t.Fatalf("active events = %+v, want only %s", active, a.ID)
	}

	if len(s.AllEvents()) != 2 {
		t.Errorf("AllEvents should keep deactivated rows")
	}
}

func TestCreateRegistrationIncrementsCounter(t *testing.T) {
	s := store.NewEmpty()

	u := s.CreateUser(user.New{Email: "a@b.edu", Password: "pw"})
	e := s.CreateEvent(event.CreateEventRequest{Name: "Fest", Category: "Cultural", MaxSeats: 2})

	for i := 0; i < 3; i++ {
		s.CreateRegistration(registration.New{
			UserID:          u.ID,
			EventID:         e.ID,
			EventCategories: []string{"Dance"},
		})
	}

	got, _ := s.Event(e.ID)
	// no capacity enforcement: counter sails past maxSeats
	if got.CurrentRegistrations != 3 {
		t.Errorf("counter = %d, want 3", got.CurrentRegistrations)
	}

	if regs := s.RegistrationsByEvent(e.ID); len(regs) != 3 {
		t.Errorf("registrations = %d, want 3", len(regs))
	}
}

func TestCreateRegistrationUnknownEventSkipsIncrement(t *testing.T) {
	s := store.NewEmpty()

	u := s.CreateUser(user.New{Email: "a@b.edu", Password: "pw"})

	reg := s.CreateRegistration(registration.New{
		UserID:          u.ID,
		EventID:         "no-such-event",
		EventCategories: []string{"Sports"},
	})

	// the row is still created
	if len(s.AllRegistrations()) != 1 {
		t.Fatalf("registration row missing")
	}
	if reg.EventID != "no-such-event" {
		t.Errorf("eventId = %q", reg.EventID)
	}
}

func TestRegistrationsByUser(t *testing.T) {
	s := store.NewEmpty()

	u1 := s.CreateUser(user.New{Email: "a@b.edu", Password: "pw"})
	u2 := s.CreateUser(user.New{Email: "c@d.edu", Password: "pw"})
	e := s.CreateEvent(event.CreateEventRequest{Name: "Fest", Category: "Cultural"})

	s.CreateRegistration(registration.New{UserID: u1.ID, EventID: e.ID, EventCategories: []string{"Dance"}})
	s.CreateRegistration(registration.New{UserID: u1.ID, EventID: e.ID, EventCategories: []string{"Singing"}})
	s.CreateRegistration(registration.New{UserID: u2.ID, EventID: e.ID, EventCategories: []string{"Sports"}})

	if got := len(s.RegistrationsByUser(u1.ID)); got != 2 {
		t.Errorf("u1 registrations = %d, want 2", got)
	}
	if got := len(s.RegistrationsByUser("ghost")); got != 0 {
		t.Errorf("ghost registrations = %d, want 0", got)
	}
}

func TestSessions(t *testing.T) {
	s := store.NewEmpty()

	first := s.CreateSession("user-1")
	second := s.CreateSession("user-1")

	if first.ID == second.ID {
		t.Fatalf("sessions must get distinct ids")
	}
	if len(s.ActiveSessions()) != 2 {
		t.Fatalf("active sessions = %d, want 2", len(s.ActiveSessions()))
	}

	s.DeactivateSession(first.ID)

	active := s.ActiveSessions()
	if len(active) != 1 || active[0].ID != second.ID {
		t.Fatalf("deactivating one session touched the other: %+v", active)
	}

	// both sessions remain in the per-user history
	if got := len(s.UserSessions("user-1")); got != 2 {
		t.Errorf("user sessions = %d, want 2", got)
	}
}

func TestDeactivateSessionIdempotent(t *testing.T) {
	s := store.NewEmpty()

	sess := s.CreateSession("user-1")

	s.DeactivateSession(sess.ID)
	s.DeactivateSession(sess.ID)   // second call is a no-op
	s.DeactivateSession("unknown") // so is an unknown id

	if got := len(s.ActiveSessions()); got != 0 {
		t.Errorf("active sessions = %d, want 0", got)
	}
}

func TestCategories(t *testing.T) {
	s := store.New()

	if !s.AddCategory("Robotics") {
		t.Fatalf("add failed")
	}
	if s.AddCategory("robotics") {
		t.Errorf("duplicate add (case-insensitive) should be rejected")
	}
	if !s.RemoveCategory("Robotics") {
		t.Fatalf("remove failed")
	}
	if s.RemoveCategory("Robotics") {
		t.Errorf("second remove should report false")
	}
}

func TestDeleteCategoryKeepsRegistrations(t *testing.T) {
	s := store.New()

	u := s.CreateUser(user.New{Email: "a@b.edu", Password: "pw"})
	e := s.CreateEvent(event.CreateEventRequest{Name: "Fest", Category: "Cultural"})

	s.CreateRegistration(registration.New{
		UserID:          u.ID,
		EventID:         e.ID,
		EventCategories: []string{"Dance"},
	})

	if !s.RemoveCategory("Dance") {
		t.Fatalf("remove failed")
	}

	regs := s.AllRegistrations()
	if len(regs) != 1 || len(regs[0].EventCategories) != 1 || regs[0].EventCategories[0] != "Dance" {
		t.Errorf("registration lost its recorded category: %+v", regs)
	}
}
