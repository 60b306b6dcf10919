package coverletters

import "time"

// StatusCompleted is the only status produced by generation.
const StatusCompleted = "completed"

// CoverLetter is a generated letter owned by exactly one user.
type CoverLetter struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	JobTitle       string    `json:"jobTitle"`
	CompanyName    string    `json:"companyName"`
	JobDescription string    `json:"jobDescription"`
	Status         string    `json:"status"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// GenerateInput holds the job fields supplied by the caller.
type GenerateInput struct {
	JobTitle       string `json:"jobTitle"`
	CompanyName    string `json:"companyName"`
	JobDescription string `json:"jobDescription"`
}
