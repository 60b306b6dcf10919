package coverletters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"careerai-backend/internal/identity"
	"careerai-backend/internal/llm"
	"careerai-backend/internal/queue"
	"careerai-backend/internal/shared/metrics"
	"careerai-backend/internal/shared/telemetry"
	"careerai-backend/internal/users"
)

// UserLookup maps a verified external identity to its user record.
type UserLookup interface {
	GetByExternalID(ctx context.Context, externalID string) (users.User, error)
}

// Service generates and manages cover letters for the calling user.
type Service struct {
	Repo     Repo
	Users    UserLookup
	Identity identity.Resolver
	LLM      llm.Client
	Events   queue.Client
	Now      func() time.Time
}

// NewService wires a Service that reads identities from the request context.
func NewService(repo Repo, lookup UserLookup, client llm.Client, events queue.Client) *Service {
	if events == nil {
		events = queue.NoopClient{}
	}
	return &Service{
		Repo:     repo,
		Users:    lookup,
		Identity: identity.ContextResolver{},
		LLM:      client,
		Events:   events,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}

// Generate writes a cover letter for the caller and stores it once the
// generation client succeeds. Nothing is stored on failure.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (CoverLetter, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return CoverLetter{}, err
	}
	if err := validateInput(input); err != nil {
		return CoverLetter{}, err
	}
	if s.LLM == nil {
		return CoverLetter{}, errors.New("generation client not configured")
	}

	prompt := BuildPrompt(input, user)
	start := time.Now()
	text, err := s.LLM.Generate(ctx, prompt)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty response from generation client")
	}
	if err != nil {
		metrics.ObserveGeneration(metrics.OutcomeFailure, time.Since(start))
		telemetry.Error("cover_letter.generate_failed", map[string]any{
			"user_id":     user.ID,
			"prompt_hash": llm.HashPrompt(prompt),
			"error":       err.Error(),
		})
		return CoverLetter{}, &GenerationError{Err: err}
	}
	metrics.ObserveGeneration(metrics.OutcomeSuccess, time.Since(start))

	now := s.now()
	letter := CoverLetter{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		JobTitle:       input.JobTitle,
		CompanyName:    input.CompanyName,
		JobDescription: input.JobDescription,
		Status:         StatusCompleted,
		Content:        strings.TrimSpace(text),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(ctx, letter); err != nil {
		return CoverLetter{}, err
	}

	telemetry.Info("cover_letter.generated", map[string]any{
		"user_id":         user.ID,
		"cover_letter_id": letter.ID,
		"duration_ms":     time.Since(start).Milliseconds(),
	})
	s.publishGenerated(ctx, letter)
	return letter, nil
}

// List returns the caller's letters, newest first. A user with none gets an empty slice.
func (s *Service) List(ctx context.Context) ([]CoverLetter, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return nil, err
	}
	letters, err := s.Repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if letters == nil {
		letters = []CoverLetter{}
	}
	return letters, nil
}

// Get returns one of the caller's letters. A letter owned by someone else is
// reported as ErrNotFound.
func (s *Service) Get(ctx context.Context, id string) (CoverLetter, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return CoverLetter{}, err
	}
	if strings.TrimSpace(id) == "" {
		return CoverLetter{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, user.ID, id)
}

// Delete removes one of the caller's letters. Unknown or foreign ids return ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	user, err := s.currentUser(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, user.ID, id)
}

func (s *Service) currentUser(ctx context.Context) (users.User, error) {
	resolver := s.Identity
	if resolver == nil {
		resolver = identity.ContextResolver{}
	}
	externalID, err := resolver.Resolve(ctx)
	if err != nil {
		return users.User{}, err
	}
	if s.Repo == nil || s.Users == nil {
		return users.User{}, errors.New("cover letter service not configured")
	}
	return s.Users.GetByExternalID(ctx, externalID)
}

func (s *Service) publishGenerated(ctx context.Context, letter CoverLetter) {
	if s.Events == nil {
		return
	}
	msg := queue.Message{
		Name:          queue.EventCoverLetterGenerated,
		CoverLetterID: letter.ID,
		UserID:        letter.UserID,
		EnqueuedAt:    s.now().Format(time.RFC3339),
		Version:       1,
	}
	if err := s.Events.Send(ctx, msg); err != nil {
		telemetry.Warn("cover_letter.event_failed", map[string]any{
			"cover_letter_id": letter.ID,
			"event":           msg.Name,
			"error":           err.Error(),
		})
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func validateInput(input GenerateInput) error {
	var missing []string
	if strings.TrimSpace(input.JobTitle) == "" {
		missing = append(missing, "jobTitle")
	}
	if strings.TrimSpace(input.CompanyName) == "" {
		missing = append(missing, "companyName")
	}
	if strings.TrimSpace(input.JobDescription) == "" {
		missing = append(missing, "jobDescription")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
