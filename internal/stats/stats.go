package stats

import (
	"sort"

	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/store"
)

// Aggregator derives admin dashboard numbers by scanning the store on
// every call. Cost is linear in sessions, events and registrations; there
// is no caching and no pagination.
type Aggregator struct {
	store *store.Store
}

func NewAggregator(st *store.Store) *Aggregator {
	return &Aggregator{store: st}
}

type Stats struct {
	TotalEvents        int `json:"totalEvents"`
	RegisteredStudents int `json:"registeredStudents"`
	TotalRegistrations int `json:"totalRegistrations"`
	ActiveEvents       int `json:"activeEvents"`
}

// ActivityEntry is one active student session on the admin dashboard.
type ActivityEntry struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Email       string `json:"email"`
	LoginTime   string `json:"loginTime"`
}

// Stats counts events (all of them, active or not), registrations, and the
// distinct student users holding a currently-active session. The student
// count is login-derived: a student with registrations but no live session
// is not counted, and admins never are.
func (a *Aggregator) Stats() Stats {
	events := a.store.AllEvents()

	active := 0
	for _, e := range events {
		if e.IsActive {
			active++
		}
	}

	distinct := make(map[string]struct{})
	for _, sess := range a.store.ActiveSessions() {
		u, ok := a.store.User(sess.UserID)
		if ok && u.Role == user.RoleStudent {
			distinct[u.ID] = struct{}{}
		}
	}

	return Stats{
		TotalEvents:        len(events),
		RegisteredStudents: len(distinct),
		TotalRegistrations: len(a.store.AllRegistrations()),
		ActiveEvents:       active,
	}
}

// StudentActivity lists every active student session, most recent login
// first. Sessions with a zero login time sort last.
func (a *Aggregator) StudentActivity() []ActivityEntry {
	sessions := a.store.ActiveSessions()

	type row struct {
		entry ActivityEntry
		at    int64
	}
	rows := make([]row, 0, len(sessions))

	for _, sess := range sessions {
		u, ok := a.store.User(sess.UserID)
		if !ok || u.Role != user.RoleStudent {
			continue
		}

		at := int64(0)
		loginTime := ""
		if !sess.LoginTime.IsZero() {
			at = sess.LoginTime.UnixMilli()
			loginTime = sess.LoginTime.UTC().Format("2006-01-02T15:04:05.000Z07:00")
		}

		rows = append(rows, row{
			entry: ActivityEntry{
				ID:          sess.ID,
				StudentName: u.DisplayName(),
				Email:       u.Email,
				LoginTime:   loginTime,
			},
			at: at,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].at > rows[j].at
	})

	out := make([]ActivityEntry, len(rows))
	for i, r := range rows {
		out[i] = r.entry
	}
	return out
}
