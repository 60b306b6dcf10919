package coverletters

import (
	"strconv"
	"strings"

	"careerai-backend/internal/users"
)

// BuildPrompt renders the generation prompt for one job and candidate.
// Missing skills render as an empty segment.
func BuildPrompt(input GenerateInput, user users.User) string {
	var b strings.Builder
	b.WriteString("Write a professional cover letter for a ")
	b.WriteString(input.JobTitle)
	b.WriteString(" position at ")
	b.WriteString(input.CompanyName)
	b.WriteString(".\n\n")

	b.WriteString("About the candidate:\n")
	b.WriteString("- Industry: " + user.Industry + "\n")
	b.WriteString("- Years of Experience: " + strconv.Itoa(user.Experience) + "\n")
	b.WriteString("- Skills: " + strings.Join(user.Skills, ", ") + "\n")
	b.WriteString("- Professional Background: " + user.Bio + "\n\n")

	b.WriteString("Job Description:\n")
	b.WriteString(input.JobDescription)
	b.WriteString("\n\n")

	b.WriteString("Requirements:\n")
	for i, req := range requirements {
		b.WriteString(strconv.Itoa(i+1) + ". " + req + "\n")
	}
	b.WriteString("\nFormat the letter in markdown.\n")
	return b.String()
}

var requirements = []string{
	"Use a professional, enthusiastic tone",
	"Highlight relevant skills and experience",
	"Show understanding of the company's needs",
	"Keep it concise (max 400 words)",
	"Use proper business letter formatting in markdown",
	"Include specific examples of achievements",
	"Relate candidate's background to job requirements",
}
