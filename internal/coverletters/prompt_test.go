package coverletters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"careerai-backend/internal/users"
)

func TestBuildPromptEmbedsJobAndProfile(t *testing.T) {
	prompt := BuildPrompt(
		GenerateInput{JobTitle: "Engineer", CompanyName: "Acme", JobDescription: "Build things"},
		users.User{Industry: "Software", Experience: 6, Skills: []string{"Go", "SQL"}, Bio: "Ships services."},
	)

	assert.True(t, strings.HasPrefix(prompt, "Write a professional cover letter for a Engineer position at Acme.\n"))
	assert.Contains(t, prompt, "- Industry: Software\n")
	assert.Contains(t, prompt, "- Years of Experience: 6\n")
	assert.Contains(t, prompt, "- Skills: Go, SQL\n")
	assert.Contains(t, prompt, "- Professional Background: Ships services.\n")
	assert.Contains(t, prompt, "Job Description:\nBuild things\n")
	assert.Contains(t, prompt, "4. Keep it concise (max 400 words)\n")
	assert.Contains(t, prompt, "7. Relate candidate's background to job requirements\n")
	assert.True(t, strings.HasSuffix(prompt, "Format the letter in markdown.\n"))
}

func TestBuildPromptEmptySkills(t *testing.T) {
	for _, skills := range [][]string{nil, {}} {
		prompt := BuildPrompt(GenerateInput{JobTitle: "x", CompanyName: "y", JobDescription: "z"}, users.User{Skills: skills})
		assert.Contains(t, prompt, "- Skills: \n")
	}
}

func TestBuildPromptDeterministic(t *testing.T) {
	input := GenerateInput{JobTitle: "Engineer", CompanyName: "Acme", JobDescription: "Build things"}
	user := users.User{Industry: "Software", Experience: 2, Skills: []string{"Go"}}
	assert.Equal(t, BuildPrompt(input, user), BuildPrompt(input, user))
}
