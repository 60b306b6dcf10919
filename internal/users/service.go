package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"careerai-backend/internal/identity"
)

const (
	maxSkills     = 50
	maxExperience = 80
)

// Service resolves and maintains user records.
type Service struct {
	Repo     Repo
	Identity identity.Resolver
}

// NewService builds a Service that reads identities from the request context.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Identity: identity.ContextResolver{}}
}

// GetByExternalID maps a verified external identity to its user record.
func (s *Service) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(externalID) == "" {
		return User{}, ErrInvalidInput
	}
	return s.Repo.GetByExternalID(ctx, externalID)
}

// Current resolves the caller's identity and returns their user record.
func (s *Service) Current(ctx context.Context) (User, error) {
	externalID, err := s.Identity.Resolve(ctx)
	if err != nil {
		return User{}, err
	}
	return s.GetByExternalID(ctx, externalID)
}

// UpsertFromAuth persists the identity returned by the login provider.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ExternalID) == "" {
		return User{}, fmt.Errorf("%w: external id is required", ErrInvalidInput)
	}
	return s.Repo.UpsertFromAuth(ctx, user)
}

// UpdateProfile stores the caller's onboarding fields.
func (s *Service) UpdateProfile(ctx context.Context, profile Profile) (User, error) {
	externalID, err := s.Identity.Resolve(ctx)
	if err != nil {
		return User{}, err
	}
	profile, err = normalizeProfile(profile)
	if err != nil {
		return User{}, err
	}
	return s.Repo.UpdateProfile(ctx, externalID, profile)
}

func normalizeProfile(p Profile) (Profile, error) {
	p.Industry = strings.TrimSpace(p.Industry)
	p.Bio = strings.TrimSpace(p.Bio)
	if p.Industry == "" {
		return Profile{}, fmt.Errorf("%w: industry is required", ErrInvalidInput)
	}
	if p.Experience < 0 || p.Experience > maxExperience {
		return Profile{}, fmt.Errorf("%w: experience must be between 0 and %d", ErrInvalidInput, maxExperience)
	}
	skills := make([]string, 0, len(p.Skills))
	for _, skill := range p.Skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}
	if len(skills) > maxSkills {
		return Profile{}, fmt.Errorf("%w: at most %d skills", ErrInvalidInput, maxSkills)
	}
	p.Skills = skills
	return p, nil
}
