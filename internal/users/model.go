package users

import "time"

// User is the internal profile record joined to a request by ExternalID.
type User struct {
	ID         string    `json:"id"`
	ExternalID string    `json:"externalId"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Industry   string    `json:"industry"`
	Experience int       `json:"experience"`
	Skills     []string  `json:"skills"`
	Bio        string    `json:"bio"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile holds the onboarding fields used when writing cover letters.
type Profile struct {
	Industry   string
	Experience int
	Skills     []string
	Bio        string
}
