package registration

import "time"

type Registration struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	EventID          string    `json:"eventId"`
	EventCategories  []string  `json:"eventCategories"`
	RegistrationTime time.Time `json:"registrationTime"`
}

// New is the creation payload consumed by the store.
type New struct {
	UserID          string
	EventID         string
	EventCategories []string
}

// Form is the student-facing submission. Binding tags mirror the portal's
// sign-up form; handlers bind and validate before the workflow runs.
type Form struct {
	EventID         string   `json:"eventId" binding:"required"`
	FullName        string   `json:"fullName" binding:"required,min=1"`
	RollNumber      string   `json:"rollNumber" binding:"required,min=1"`
	EmailAddress    string   `json:"emailAddress" binding:"required,email"`
	PhoneNumber     string   `json:"phoneNumber" binding:"required,min=10"`
	Branch          string   `json:"branch" binding:"required,min=1"`
	YearOfStudy     string   `json:"yearOfStudy" binding:"required,min=1"`
	EventCategories []string `json:"eventCategories" binding:"required,min=1,dive,required"`
}
