package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/viewcampus/eventportal/internal/domain/session"
	"github.com/viewcampus/eventportal/internal/domain/user"
	"github.com/viewcampus/eventportal/internal/observability"
)

// Keep these interfaces small so tests can fake them easily.

type UserDirectory interface {
	UserByEmail(email string) (user.User, bool)
	CreateUser(in user.New) user.User
}

type SessionIssuer interface {
	Create(userID string) session.Session
	Deactivate(id string)
}

type AuthHandler struct {
	users    UserDirectory
	sessions SessionIssuer
	prom     *observability.Prom
}

func NewAuthHandler(users UserDirectory, sessions SessionIssuer, prom *observability.Prom) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
		prom:     prom,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"fullName" binding:"omitempty,max=120"`
	RollNumber  string `json:"rollNumber" binding:"omitempty,max=40"`
	Branch      string `json:"branch" binding:"omitempty,max=80"`
	YearOfStudy string `json:"yearOfStudy" binding:"omitempty,max=20"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,max=20"`
}

type LogoutRequest struct {
	SessionID string `json:"sessionId"`
}

// Login compares the submitted password against the stored plain-text
// value. Weak on purpose: the portal inherited plaintext credentials and
// hardening them is out of scope here.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, ok := h.users.UserByEmail(req.Email)

	if !ok || u.Password != req.Password {
		h.prom.LoginsTotal.WithLabelValues("rejected").Inc()
		RespondUnauthorized(ctx, "Invalid credentials")
		return
	}

	// Every login opens a fresh session; concurrent sessions per user
	// are allowed.
	sess := h.sessions.Create(u.ID)

	h.prom.LoginsTotal.WithLabelValues("ok").Inc()

	ctx.JSON(http.StatusOK, gin.H{
		"user":      u.Summary(),
		"sessionId": sess.ID,
	})
}

func (h *AuthHandler) Register(ctx *gin.Context) {
	var req SignUpRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if _, exists := h.users.UserByEmail(req.Email); exists {
		RespondBadRequest(ctx, "Email already registered")
		return
	}

	u := h.users.CreateUser(user.New{
		Email:       req.Email,
		Password:    req.Password,
		Role:        user.RoleStudent,
		FullName:    req.FullName,
		RollNumber:  req.RollNumber,
		Branch:      req.Branch,
		YearOfStudy: req.YearOfStudy,
		PhoneNumber: req.PhoneNumber,
	})

	ctx.JSON(http.StatusCreated, u.Summary())
}

// Logout deactivates the session if one was named. Unknown ids are a
// silent no-op, so logging out twice always succeeds.
func (h *AuthHandler) Logout(ctx *gin.Context) {
	var req LogoutRequest

	if !BindJSON(ctx, &req) {
		return
	}

	if req.SessionID != "" {
		h.sessions.Deactivate(req.SessionID)
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
