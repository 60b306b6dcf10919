package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo stores users in memory keyed by external identity.
type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) GetByExternalID(ctx context.Context, externalID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[externalID]
	if !ok {
		return User{}, ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *MemoryRepo) UpsertFromAuth(ctx context.Context, user User) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	existing, ok := r.users[user.ExternalID]
	if ok {
		existing.Email = user.Email
		existing.Name = user.Name
		existing.UpdatedAt = now
		r.users[user.ExternalID] = existing
		return cloneUser(existing), nil
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ExternalID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *MemoryRepo) UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[externalID]
	if !ok {
		return User{}, ErrNotFound
	}
	user.Industry = profile.Industry
	user.Experience = profile.Experience
	user.Skills = append([]string(nil), profile.Skills...)
	user.Bio = profile.Bio
	user.UpdatedAt = time.Now().UTC()
	r.users[externalID] = user
	return cloneUser(user), nil
}

func cloneUser(u User) User {
	if u.Skills != nil {
		u.Skills = append([]string(nil), u.Skills...)
	}
	return u
}

var _ Repo = (*MemoryRepo)(nil)
