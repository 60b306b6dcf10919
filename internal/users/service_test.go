package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerai-backend/internal/identity"
)

func TestCurrentRequiresIdentity(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, identity.ErrUnauthorized)
}

func TestCurrentUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := identity.WithExternalID(context.Background(), "google:404")

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertThenUpdateProfile(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := identity.WithExternalID(context.Background(), "google:1")

	created, err := svc.UpsertFromAuth(ctx, User{ExternalID: "google:1", Email: "a@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	again, err := svc.UpsertFromAuth(ctx, User{ExternalID: "google:1", Email: "b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "b@example.com", again.Email)

	updated, err := svc.UpdateProfile(ctx, Profile{
		Industry:   " Software ",
		Experience: 5,
		Skills:     []string{"Go", " ", " Postgres "},
		Bio:        "Builds things.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Software", updated.Industry)
	assert.Equal(t, []string{"Go", "Postgres"}, updated.Skills)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, updated.Skills, current.Skills)
}

func TestUpdateProfileValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	ctx := identity.WithExternalID(context.Background(), "google:1")
	_, err := svc.UpsertFromAuth(ctx, User{ExternalID: "google:1"})
	require.NoError(t, err)

	for name, p := range map[string]Profile{
		"missing industry":    {Experience: 1},
		"negative experience": {Industry: "x", Experience: -1},
	} {
		p := p
		t.Run(name, func(t *testing.T) {
			_, err := svc.UpdateProfile(ctx, p)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
