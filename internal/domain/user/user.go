package user

import (
	"strings"
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"-"` // stored in plain text, never serialized
	Role        string    `json:"role"`
	FullName    string    `json:"fullName,omitempty"`
	RollNumber  string    `json:"rollNumber,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	YearOfStudy string    `json:"yearOfStudy,omitempty"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// New is the creation payload consumed by the store. An empty Role
// defaults to student.
type New struct {
	Email       string
	Password    string
	Role        string
	FullName    string
	RollNumber  string
	Branch      string
	YearOfStudy string
	PhoneNumber string
}

// Update is a partial update; nil fields are left untouched.
type Update struct {
	Role        *string `json:"role"`
	FullName    *string `json:"fullName"`
	RollNumber  *string `json:"rollNumber"`
	Branch      *string `json:"branch"`
	YearOfStudy *string `json:"yearOfStudy"`
	PhoneNumber *string `json:"phoneNumber"`
}

// Summary is the shape the auth endpoints return.
type Summary struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	FullName   string `json:"fullName,omitempty"`
	RollNumber string `json:"rollNumber,omitempty"`
}

func (u User) Summary() Summary {
	return Summary{
		ID:         u.ID,
		Email:      u.Email,
		Role:       u.Role,
		FullName:   u.FullName,
		RollNumber: u.RollNumber,
	}
}

// DisplayName resolves a human-facing name: full name, else roll number,
// else the local part of the email.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	if u.RollNumber != "" {
		return u.RollNumber
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
