package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/http/handlers"
	"github.com/viewcampus/eventportal/internal/stats"
	"github.com/viewcampus/eventportal/internal/store"
)

func adminFixture() (*store.Store, *handlers.AdminHandler) {
	st := store.New()
	return st, handlers.NewAdminHandler(stats.NewAggregator(st), st)
}

func TestAdminStatsSeededState(t *testing.T) {
	st, h := adminFixture()

	// the seeded admin logging in must not count as a registered student
	admin, _ := st.UserByEmail(store.SeedAdminEmail)
	st.CreateSession(admin.ID)

	r := setupRouter(http.MethodGet, "/api/admin/stats", h.Stats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	var got stats.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad response: %v", err)
	}

	want := stats.Stats{TotalEvents: 2, RegisteredStudents: 0, TotalRegistrations: 0, ActiveEvents: 2}
	if got != want {
		t.Errorf("stats = %+v, want %+v", got, want)
	}
}

func TestAdminListUsersHidesPasswords(t *testing.T) {
	_, h := adminFixture()

	r := setupRouter(http.MethodGet, "/api/admin/users", h.ListUsers)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d", w.Code)
	}

	body := w.Body.String()
	if body == "" {
		t.Fatalf("empty body")
	}
	if strings.Contains(body, store.SeedAdminPassword) || strings.Contains(body, "password") {
		t.Errorf("user listing leaked credentials: %s", body)
	}
}

func TestAdminPatchUser(t *testing.T) {
	st, h := adminFixture()
	student := st.CreateUser(user.New{Email: "s@view.edu.in", Password: "pw", FullName: "Student"})

	r := setupRouter(http.MethodPatch, "/api/admin/users/:id", h.PatchUser)

	w := doJSON(t, r, http.MethodPatch, "/api/admin/users/"+student.ID, `{"role":"admin"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	updated, _ := st.User(student.ID)
	if updated.Role != user.RoleAdmin {
		t.Errorf("role = %q, want admin", updated.Role)
	}
	if updated.FullName != "Student" {
		t.Errorf("patch must not clobber unnamed fields")
	}

	w = doJSON(t, r, http.MethodPatch, "/api/admin/users/ghost", `{"role":"admin"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("got status %d for unknown id, want 404", w.Code)
	}
}

func TestAdminCategories(t *testing.T) {
	_, h := adminFixture()

	list := setupRouter(http.MethodGet, "/api/admin/event-categories", h.ListCategories)
	add := setupRouter(http.MethodPost, "/api/admin/event-categories", h.AddCategory)
	del := setupRouter(http.MethodDelete, "/api/admin/event-categories/:category", h.DeleteCategory)

	// add
	w := doJSON(t, add, http.MethodPost, "/api/admin/event-categories", `{"category":"Robotics"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add: got status %d, body=%s", w.Code, w.Body.String())
	}

	// duplicate add
	w = doJSON(t, add, http.MethodPost, "/api/admin/event-categories", `{"category":"Robotics"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate add: got status %d", w.Code)
	}

	// present in the listing
	w = httptest.NewRecorder()
	list.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/event-categories", nil))

	var cats []string
	if err := json.Unmarshal(w.Body.Bytes(), &cats); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if !containsString(cats, "Robotics") {
		t.Fatalf("categories = %v, want Robotics present", cats)
	}

	// delete, with URL escaping exercised via the seeded "Arts & Crafts"
	w = httptest.NewRecorder()
	del.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/event-categories/"+url.PathEscape("Arts & Crafts"), nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got status %d, body=%s", w.Code, w.Body.String())
	}

	// deleting again is a 404
	w = httptest.NewRecorder()
	del.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/admin/event-categories/"+url.PathEscape("Arts & Crafts"), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete: got status %d, want 404", w.Code)
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestAdminStudentActivityEndpoint(t *testing.T) {
	st, h := adminFixture()

	student := st.CreateUser(user.New{Email: "s@view.edu.in", Password: "pw", FullName: "Student One"})
	st.CreateSession(student.ID)

	admin, _ := st.UserByEmail(store.SeedAdminEmail)
	st.CreateSession(admin.ID)

	r := setupRouter(http.MethodGet, "/api/admin/student-activity", h.StudentActivity)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/student-activity", nil))

	var entries []stats.ActivityEntry
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1 (admin session excluded)", len(entries))
	}
	if entries[0].StudentName != "Student One" {
		t.Errorf("studentName = %q", entries[0].StudentName)
	}
}
