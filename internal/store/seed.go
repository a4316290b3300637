package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/viewcampus/eventportal/internal/domain/event"
	"github.com/viewcampus/eventportal/internal/domain/user"
)

// Bootstrap admin credentials. Fixed so fresh deployments and tests see
// the same starting state.
const (
	SeedAdminEmail    = "admin@view.edu.in"
	SeedAdminPassword = "admin123"
	SeedAdminName     = "System Administrator"
)

// DefaultCategories is the portal's stock checkbox set; admins can grow
// and shrink it at runtime.
var DefaultCategories = []string{
	"Arts & Crafts",
	"Cultural",
	"Dance",
	"Photography",
	"Singing",
	"Sports",
	"Technical",
}

func (s *Store) seedDefaults() {
	now := time.Now().UTC()

	admin := user.User{
		ID:        uuid.NewString(),
		Email:     SeedAdminEmail,
		Password:  SeedAdminPassword,
		Role:      user.RoleAdmin,
		FullName:  SeedAdminName,
		CreatedAt: now,
	}

	techritz := event.Event{
		ID:          uuid.NewString(),
		Name:        "Techritz",
		Description: "festival",
		Category:    "Art",
		Date:        "dec 15 2025",
		Time:        "12:00",
		MaxSeats:    500,
		IsActive:    true,
		CreatedAt:   now,
	}

	yuvatarang := event.Event{
		ID:        uuid.NewString(),
		Name:      "yuvatarang",
		Category:  "Photography",
		MaxSeats:  5000,
		IsActive:  true,
		CreatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[admin.ID] = admin
	s.events[techritz.ID] = techritz
	s.events[yuvatarang.ID] = yuvatarang
	s.categories = append([]string(nil), DefaultCategories...)
}
