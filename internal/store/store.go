package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viewcampus/eventportal/internal/domain/event"
	"github.com/viewcampus/eventportal/internal/domain/registration"
	"github.com/viewcampus/eventportal/internal/domain/session"
	"github.com/viewcampus/eventportal/internal/domain/user"
)

// Store owns all portal state: users, events, registrations, sessions and
// the admin-managed category list. Nothing survives a restart. Every other
// component goes through these accessors; raw map entries never leave the
// lock.
type Store struct {
	mu            sync.RWMutex
	users         map[string]user.User
	events        map[string]event.Event
	registrations map[string]registration.Registration
	sessions      map[string]session.Session
	categories    []string
}

// New returns a store pre-seeded with the bootstrap admin account, the two
// demonstration events and the default category list.
func New() *Store {
	s := NewEmpty()
	s.seedDefaults()
	return s
}

// NewEmpty returns a store with no seed data. Mostly useful in tests that
// want full control over the fixture.
func NewEmpty() *Store {
	return &Store{
		users:         make(map[string]user.User),
		events:        make(map[string]event.Event),
		registrations: make(map[string]registration.Registration),
		sessions:      make(map[string]session.Session),
	}
}

// Users

func (s *Store) User(id string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// UserByEmail scans linearly; email uniqueness in this store rests on
// callers checking here before CreateUser.
func (s *Store) UserByEmail(email string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return user.User{}, false
}

func (s *Store) CreateUser(in user.New) user.User {
	role := in.Role
	if role == "" {
		role = user.RoleStudent
	}

	u := user.User{
		ID:          uuid.NewString(),
		Email:       in.Email,
		Password:    in.Password,
		Role:        role,
		FullName:    in.FullName,
		RollNumber:  in.RollNumber,
		Branch:      in.Branch,
		YearOfStudy: in.YearOfStudy,
		PhoneNumber: in.PhoneNumber,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()

	return u
}

// UpdateUser shallow-merges the provided fields over the existing record.
// Unknown ids report ok=false and change nothing; callers must check.
func (s *Store) UpdateUser(id string, upd user.Update) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, false
	}

	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.RollNumber != nil {
		u.RollNumber = *upd.RollNumber
	}
	if upd.Branch != nil {
		u.Branch = *upd.Branch
	}
	if upd.YearOfStudy != nil {
		u.YearOfStudy = *upd.YearOfStudy
	}
	if upd.PhoneNumber != nil {
		u.PhoneNumber = *upd.PhoneNumber
	}

	s.users[id] = u
	return u, true
}

func (s *Store) AllUsers() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

// Events

// ActiveEvents returns only events whose IsActive flag is set; deactivated
// events stay in the table but disappear from the public listing.
func (s *Store) ActiveEvents() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Event, 0, len(s.events))
	for _, e := range s.events {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out
}

// AllEvents returns every event regardless of the active flag.
func (s *Store) AllEvents() []event.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]event.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e)
	}
	return out
}

func (s *Store) Event(id string) (event.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	return e, ok
}

func (s *Store) CreateEvent(req event.CreateEventRequest) event.Event {
	maxSeats := req.MaxSeats
	if maxSeats == 0 {
		maxSeats = event.DefaultMaxSeats
	}

	e := event.Event{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Date:                 req.Date,
		Time:                 req.Time,
		MaxSeats:             maxSeats,
		CurrentRegistrations: 0,
		IsActive:             true,
		CreatedAt:            time.Now().UTC(),
	}

	s.mu.Lock()
	s.events[e.ID] = e
	s.mu.Unlock()

	return e
}

// UpdateEvent shallow-merges the provided fields; unknown ids report
// ok=false and change nothing.
func (s *Store) UpdateEvent(id string, upd event.Update) (event.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return event.Event{}, false
	}

	if upd.Name != nil {
		e.Name = *upd.Name
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Time != nil {
		e.Time = *upd.Time
	}
	if upd.MaxSeats != nil {
		e.MaxSeats = *upd.MaxSeats
	}
	if upd.CurrentRegistrations != nil {
		e.CurrentRegistrations = *upd.CurrentRegistrations
	}
	if upd.IsActive != nil {
		e.IsActive = *upd.IsActive
	}

	s.events[id] = e
	return e, true
}

// Registrations

// CreateRegistration records the submission verbatim and bumps the target
// event's counter by exactly 1. There is no capacity check against
// MaxSeats, and an unknown event id only skips the bump; the registration
// row is created either way. Callers wanting a hard existence guarantee
// must check first.
func (s *Store) CreateRegistration(in registration.New) registration.Registration {
	r := registration.Registration{
		ID:               uuid.NewString(),
		UserID:           in.UserID,
		EventID:          in.EventID,
		EventCategories:  in.EventCategories,
		RegistrationTime: time.Now().UTC(),
	}

	s.mu.Lock()
	s.registrations[r.ID] = r

	if e, ok := s.events[in.EventID]; ok {
		e.CurrentRegistrations++
		s.events[in.EventID] = e
	}
	s.mu.Unlock()

	return r
}

func (s *Store) RegistrationsByUser(userID string) []registration.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]registration.Registration, 0)
	for _, r := range s.registrations {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) RegistrationsByEvent(eventID string) []registration.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]registration.Registration, 0)
	for _, r := range s.registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) AllRegistrations() []registration.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]registration.Registration, 0, len(s.registrations))
	for _, r := range s.registrations {
		out = append(out, r)
	}
	return out
}

// Sessions

// CreateSession always succeeds. It does not check that the user exists,
// and a user may hold any number of concurrently active sessions.
func (s *Store) CreateSession(userID string) session.Session {
	sess := session.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		LoginTime: time.Now().UTC(),
		IsActive:  true,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

func (s *Store) ActiveSessions() []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]session.Session, 0)
	for _, sess := range s.sessions {
		if sess.IsActive {
			out = append(out, sess)
		}
	}
	return out
}

func (s *Store) UserSessions(userID string) []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]session.Session, 0)
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			out = append(out, sess)
		}
	}
	return out
}

// DeactivateSession is a no-op for unknown or already-inactive ids.
func (s *Store) DeactivateSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	sess.IsActive = false
	s.sessions[id] = sess
}

// Categories

func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory appends a label; duplicates (case-insensitive) are rejected.
func (s *Store) AddCategory(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if strings.EqualFold(c, label) {
			return false
		}
	}
	s.categories = append(s.categories, label)
	return true
}

// RemoveCategory deletes the label from the list. Registrations that
// already recorded the label keep it; the list is advisory only.
func (s *Store) RemoveCategory(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.categories {
		if strings.EqualFold(c, label) {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return true
		}
	}
	return false
}
