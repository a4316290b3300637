package sessions

import (
	"github.com/viewcampus/eventportal/internal/domain/session"
	"github.com/viewcampus/eventportal/internal/store"
)

// Manager issues and invalidates login sessions. It is purely additive:
// there is no expiry sweep, and nothing stops a user from holding several
// active sessions at once.
type Manager struct {
	store *store.Store
}

func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// Create always succeeds and returns an active session. The user id is
// taken on trust; the manager does not verify it resolves to a user.
func (m *Manager) Create(userID string) session.Session {
	return m.store.CreateSession(userID)
}

// Deactivate is idempotent: unknown or already-inactive ids are a no-op.
func (m *Manager) Deactivate(id string) {
	m.store.DeactivateSession(id)
}

func (m *Manager) Active() []session.Session {
	return m.store.ActiveSessions()
}

func (m *Manager) ForUser(userID string) []session.Session {
	return m.store.UserSessions(userID)
}
